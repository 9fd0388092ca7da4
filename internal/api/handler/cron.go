package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ad-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ad-dashboard-api/pkg/log"
)

const (
	CronJobTypeDataset = "dataset"
	CronJobTypeAll     = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DatasetSyncService *scheduler.DatasetSyncService
}

// RunCronJob executa manualmente uma cron job em background
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeDataset, CronJobTypeAll:
			if services.DatasetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de anúncios não disponível", nil)
				return
			}

			started := services.DatasetSyncService.TriggerManualSync(r.Context())
			message := "Cron job iniciada com sucesso"
			if !started {
				message = "Cron job já em andamento"
			}

			writeJSON(w, log.ForContext(r.Context()), http.StatusAccepted, map[string]any{
				"message": message,
				"type":    cronType,
				"started": started,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset, all", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetSyncService != nil {
			status[CronJobTypeDataset] = services.DatasetSyncService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	}
}
