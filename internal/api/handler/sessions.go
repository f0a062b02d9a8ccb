package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/session"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/widgets"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
	"github.com/vfg2006/dashboard-demo-api/pkg/middleware"
)

const defaultHistoryLimit = 50

// StartSession abre uma sessão e devolve o token de visitante
func StartSession(sessions session.SessionManager, auth authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Start(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao iniciar sessão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar sessão", nil)
			return
		}

		token, err := auth.IssueSessionToken(s)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao gerar token da sessão")
			_ = sessions.End(r.Context(), s.ID)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar token da sessão", nil)
			return
		}

		writeJSON(w, r, http.StatusCreated, domain.SessionResponse{Session: *s, Token: token})
	}
}

func EndSession(sessions session.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não identificada", nil)
			return
		}

		if err := sessions.End(r.Context(), s.ID); err != nil {
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListInteractions retorna o histórico de widgets da sessão, mais recentes primeiro
func ListInteractions(service widgets.WidgetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não identificada", nil)
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", raw)
				return
			}
			limit = parsed
		}

		interactions, err := service.History(r.Context(), s.ID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao listar interações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar interações", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, interactions)
	}
}
