// Package authenticating emite e valida os tokens de sessão e de administrador
package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 24 * time.Hour

type Authenticator interface {
	IssueSessionToken(session *domain.Session) (string, error)
	LoginAdmin(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret            []byte
	adminEmail        string
	adminPasswordHash string
	now               func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secret:            []byte(cfg.Auth.Secret),
		adminEmail:        handleEmail(cfg.Admin.Email),
		adminPasswordHash: cfg.Admin.PasswordHash,
		now:               time.Now,
	}
}

// IssueSessionToken gera o token de visitante; expira junto com a sessão
func (s *Service) IssueSessionToken(session *domain.Session) (string, error) {
	claims := domain.Claims{
		SessionID: session.ID,
		Role:      domain.RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := s.sign(claims)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token da sessão")
	}
	return token, nil
}

func (s *Service) LoginAdmin(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if s.adminPasswordHash == "" {
		return "", NewAuthError(ErrAdminDisabled, apiErrors.ErrInvalidCredentials, "ADMIN_PASSWORD_HASH não configurado")
	}

	if handleEmail(email) != s.adminEmail {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(password)); err != nil {
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	now := s.now()
	claims := domain.Claims{
		Email: s.adminEmail,
		Role:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		},
	}

	token, err := s.sign(claims)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	switch claims.Role {
	case domain.RoleViewer:
		if claims.SessionID == "" {
			return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem sessão")
		}
	case domain.RoleAdmin:
	default:
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Papel desconhecido")
	}

	return claims, nil
}

func (s *Service) sign(claims domain.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// HashPassword gera o hash bcrypt usado em ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "authenticating: erro ao gerar hash")
	}
	return string(hashed), nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
