package handler

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeJSON(rec, req, http.StatusCreated, map[string]float64{"value": 2.5})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"value":2.5}`, rec.Body.String())
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeJSON(rec, req, http.StatusOK, map[string]float64{"value": math.Inf(1)})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
}
