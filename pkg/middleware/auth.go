package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/authenticating"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser    contextKey = "user"
	ContextKeySession contextKey = "session"
)

// Rotas acessíveis sem token, por método
var publicRoutes = map[string]string{
	"/healthcheck":    http.MethodGet,
	"/v1/sessions":    http.MethodPost,
	"/v1/admin/login": http.MethodPost,
}

func isPublic(r *http.Request) bool {
	method, ok := publicRoutes[r.URL.Path]
	return ok && method == r.Method
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) && authErr.Code != "" {
					code = authErr.Code
				}
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionLookup é a parte do gerenciador de sessões usada pelo middleware
type SessionLookup interface {
	Get(id string) (*domain.Session, error)
}

// RequireSession exige um token de visitante cuja sessão ainda esteja aberta
func RequireSession(sessions SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.SessionID == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão é obrigatório", nil)
				return
			}

			session, err := sessions.Get(claims.SessionID)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("middleware: sessão rejeitada")
				apiErrors.WriteDomainError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			ctx = log.WithSessionID(ctx, session.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok && session != nil
}
