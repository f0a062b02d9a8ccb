package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-demo-api/internal/scheduler"
	"github.com/vfg2006/dashboard-demo-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executadas manualmente
const (
	CronJobTypeSessionCleanup = "session-cleanup"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SessionCleanupService *scheduler.SessionCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSessionCleanup:
			if services.SessionCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.SessionCleanupService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: session-cleanup", cronType)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.SessionCleanupService != nil {
			status[CronJobTypeSessionCleanup] = services.SessionCleanupService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
