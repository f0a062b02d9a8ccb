package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/widgets"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-demo-api/pkg/middleware"
)

func sessionID(r *http.Request) string {
	if s, ok := middleware.SessionFromContext(r.Context()); ok {
		return s.ID
	}
	return ""
}

func ClickButton(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.Click(r.Context(), sessionID(r)))
	}
}

// Greet responde 200 também para nome vazio, com prompt=true
func Greet(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.GreetingRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.Greet(r.Context(), sessionID(r), req.Name))
	}
}

func Square(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Number *float64 `json:"number"`
		}
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		if req.Number == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "number é obrigatório", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.Square(r.Context(), sessionID(r), *req.Number))
	}
}

func ToggleInfo(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckboxRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.ToggleInfo(r.Context(), sessionID(r), req.Checked))
	}
}

func ColorOptions(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ColorOptions())
	}
}

func ChooseColor(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ColorRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.ChooseColor(r.Context(), sessionID(r), req.Option)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.CodeFor(err), "Opção de cor inválida", service.ColorOptions().Options)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}
