package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos nos tokens
const (
	RoleViewer = "viewer"
	RoleAdmin  = "admin"
)

// Session representa uma sessão de dashboard aberta por um navegador
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired indica se a sessão já passou do prazo em now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type SessionResponse struct {
	Session Session `json:"session"`
	Token   string  `json:"token"`
}

type Claims struct {
	SessionID string `json:"sid,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}
