package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
)

func AdminLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AdminLoginRequest
		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginAdmin(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.AdminLoginResponse{Token: token})
	}
}

// handleLoginError traduz o AuthError para a resposta sem expor o motivo exato
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		logrus.WithError(err).Error("Erro inesperado no login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	logrus.WithFields(logrus.Fields{
		"code":  authErr.Code,
		"error": authErr.Err,
	}).Warn("Falha no login de administrador")

	switch {
	case errors.Is(authErr, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
	case authenticating.IsCredentialsError(authErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	default:
		apiErrors.WriteError(w, authErr.Code, "Erro na autenticação", nil)
	}
}
