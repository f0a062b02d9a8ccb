package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/session"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/summarizing"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-demo-api/pkg/middleware"
	"github.com/vfg2006/dashboard-demo-api/pkg/utils"
)

type DatasetResponse struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Seed      uint32               `json:"seed"`
	Count     int                  `json:"count"`
	Records   []domain.DailyRecord `json:"records"`
}

// sessionDataset recupera o dataset da sessão do contexto, escrevendo o erro quando não houver
func sessionDataset(w http.ResponseWriter, r *http.Request, sessions session.SessionManager) (*domain.Dataset, bool) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não identificada", nil)
		return nil, false
	}

	ds, err := sessions.Dataset(s.ID)
	if err != nil {
		apiErrors.WriteDomainError(w, err)
		return nil, false
	}

	return ds, true
}

// GetDataset lista os registros diários; from/to (yyyy-mm-dd) filtram o intervalo
func GetDataset(sessions session.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, ok := sessionDataset(w, r, sessions)
		if !ok {
			return
		}

		query := r.URL.Query()
		from, err := utils.ParseDate(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from deve estar no formato yyyy-mm-dd", query.Get("from"))
			return
		}
		to, err := utils.ParseDate(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "to deve estar no formato yyyy-mm-dd", query.Get("to"))
			return
		}

		start, end := ds.Start(), ds.End()
		if !from.IsZero() {
			start = from
		}
		if !to.IsZero() {
			end = to
		}
		if end.Before(start) {
			apiErrors.WriteDomainError(w, &domain.InvalidRangeError{Start: start, End: end})
			return
		}

		records := ds.Between(start, end)
		writeJSON(w, r, http.StatusOK, DatasetResponse{
			StartDate: start.Format(domain.DateLayout),
			EndDate:   end.Format(domain.DateLayout),
			Seed:      ds.Config().Seed,
			Count:     len(records),
			Records:   records,
		})
	}
}

func GetSummary(sessions session.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, ok := sessionDataset(w, r, sessions)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, summarizing.Summarize(ds))
	}
}
