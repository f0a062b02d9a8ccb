package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/charting"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/session"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
)

// buildChart monta a especificação a partir de :kind e das opções da query (title, color, theme)
func buildChart(w http.ResponseWriter, r *http.Request, sessions session.SessionManager, charter charting.Charter) (*domain.ChartSpec, bool) {
	kind, err := domain.ParseChartKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
	if err != nil {
		apiErrors.WriteDomainError(w, err)
		return nil, false
	}

	query := r.URL.Query()

	// Sem tema na query vale o tema padrão configurado
	var theme domain.ChartTheme
	if raw := query.Get("theme"); raw != "" {
		if theme, err = domain.ParseChartTheme(raw); err != nil {
			apiErrors.WriteDomainError(w, err)
			return nil, false
		}
	}

	ds, ok := sessionDataset(w, r, sessions)
	if !ok {
		return nil, false
	}

	spec, err := charter.Build(ds, kind, domain.ChartOptions{
		Title: query.Get("title"),
		Color: query.Get("color"),
		Theme: theme,
	})
	if err != nil {
		apiErrors.WriteDomainError(w, err)
		return nil, false
	}

	return spec, true
}

func GetChart(sessions session.SessionManager, charter charting.Charter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, ok := buildChart(w, r, sessions, charter)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, spec)
	}
}

// GetChartImage renderiza o gráfico em PNG
func GetChartImage(sessions session.SessionManager, charter charting.Charter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, ok := buildChart(w, r, sessions, charter)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := charter.Render(spec, &buf); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("chart_kind", spec.Kind).Error("handler: erro ao renderizar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrRender, "Erro ao renderizar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.Header().Set("Cache-Control", "private, max-age=300")
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("handler: erro ao enviar imagem")
		}
	}
}
