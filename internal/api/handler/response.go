package handler

import (
	"bytes"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodySize limita o corpo das requisições dos widgets
const maxBodySize = 1 << 16

// writeJSON codifica antes de escrever o status; falha de codificação vira SRV_001
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v)
}
