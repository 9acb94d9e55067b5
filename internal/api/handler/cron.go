package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-analytics-api/internal/scheduler"
	"github.com/vfg2006/marketing-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeSyncLogRetention = "sync-log-retention"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	SyncLogRetentionService *scheduler.SyncLogRetentionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeSyncLogRetention, CronJobTypeAll:
			if services.SyncLogRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de logs não disponível", "")
				return
			}
			services.SyncLogRetentionService.TriggerManualSync()
		default:
			apiErrors.WriteError(
				w,
				apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: sync-log-retention, all",
				"",
			)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: execução manual disparada")

		w.Header().Set("Content-Type", "application/json")
		response := map[string]interface{}{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("cron: erro ao codificar resposta")
		}
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]interface{}{}
		if services.SyncLogRetentionService != nil {
			status[CronJobTypeSyncLogRetention] = services.SyncLogRetentionService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithField("error", err.Error()).Error("cron: erro ao codificar resposta")
		}
	})
}
