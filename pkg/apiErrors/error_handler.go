package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrMissingToken          = "AUTH_002" // Token ausente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrUnknownChartKind    = "VAL_004" // Tipo de gráfico desconhecido
	ErrInvalidOption       = "VAL_005" // Opção fora da lista
	ErrInvalidRange        = "VAL_006" // Data final anterior à inicial
	ErrUnknownField        = "VAL_007" // Campo ou tema desconhecido
	ErrRouteNotFound       = "VAL_008" // Rota não encontrada
	ErrMethodNotAllowed    = "VAL_009" // Método não permitido

	// Erros de sessão
	ErrSessionNotFound = "SES_001" // Sessão não encontrada
	ErrSessionExpired  = "SES_002" // Sessão expirada

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrRender            = "SRV_005" // Erro ao renderizar gráfico
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrUnknownChartKind:      http.StatusNotFound,
	ErrInvalidOption:         http.StatusBadRequest,
	ErrInvalidRange:          http.StatusBadRequest,
	ErrUnknownField:          http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrSessionNotFound:       http.StatusUnauthorized,
	ErrSessionExpired:        http.StatusUnauthorized,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrRender:                http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// CodeFor traduz os erros do domínio para o código da API
func CodeFor(err error) string {
	var rangeErr *domain.InvalidRangeError
	var emptyErr *domain.EmptyInputError

	switch {
	case err == nil:
		return ErrInternalServer
	case errors.As(err, &rangeErr):
		return ErrInvalidRange
	case errors.As(err, &emptyErr):
		return ErrMissingRequiredData
	case errors.Is(err, domain.ErrUnknownChartKind):
		return ErrUnknownChartKind
	case errors.Is(err, domain.ErrUnknownTheme), errors.Is(err, domain.ErrUnknownField):
		return ErrUnknownField
	case errors.Is(err, domain.ErrInvalidOption):
		return ErrInvalidOption
	case errors.Is(err, domain.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, domain.ErrSessionExpired):
		return ErrSessionExpired
	case errors.Is(err, domain.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, domain.ErrInvalidToken):
		return ErrInvalidToken
	default:
		return ErrInternalServer
	}
}

// WriteDomainError escreve o erro usando o código correspondente ao erro do domínio
func WriteDomainError(w http.ResponseWriter, err error) {
	code := CodeFor(err)
	message := "Erro interno do servidor"
	if code != ErrInternalServer {
		message = err.Error()
	}
	WriteError(w, code, message, nil)
}
