package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"intervalo inválido", errors.Wrap(&domain.InvalidRangeError{Start: time.Now(), End: time.Now()}, "ctx"), ErrInvalidRange},
		{"entrada vazia", &domain.EmptyInputError{Field: "name"}, ErrMissingRequiredData},
		{"gráfico desconhecido", errors.Wrap(domain.ErrUnknownChartKind, "charting"), ErrUnknownChartKind},
		{"tema desconhecido", domain.ErrUnknownTheme, ErrUnknownField},
		{"campo desconhecido", domain.ErrUnknownField, ErrUnknownField},
		{"opção inválida", errors.Wrap(domain.ErrInvalidOption, "widgets"), ErrInvalidOption},
		{"sessão não encontrada", domain.ErrSessionNotFound, ErrSessionNotFound},
		{"sessão expirada", domain.ErrSessionExpired, ErrSessionExpired},
		{"credenciais", domain.ErrInvalidCredentials, ErrInvalidCredentials},
		{"token", domain.ErrInvalidToken, ErrInvalidToken},
		{"genérico", errors.New("boom"), ErrInternalServer},
		{"nil", nil, ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, CodeFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, ErrInvalidOption, "opção inválida", map[string]string{"option": "roxo"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidOption, body.Code)
	assert.Equal(t, "opção inválida", body.Message)
}

func TestWriteDomainError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteDomainError(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestStatusFor_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(ErrSessionExpired))
}
