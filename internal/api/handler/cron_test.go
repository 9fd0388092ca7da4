package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ad-dashboard-api/internal/config"
	"github.com/vfg2006/ad-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ad-dashboard-api/pkg/apiErrors"
)

func TestRunCronJob(t *testing.T) {
	dashboard := &fakeDashboard{}
	syncService := scheduler.NewDatasetSyncService(dashboard, &config.Config{
		DatasetSync: config.DatasetSync{CronSchedule: "*/5 * * * *"},
	})
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{DatasetSyncService: syncService})...))

	rec := serve(t, rt, http.MethodPost, "/v1/cron/dataset/run", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"dataset"`)

	require.Eventually(t, func() bool {
		status := syncService.GetStatus()
		return !syncService.IsRunning() && !status["last_sync_completed_at"].(time.Time).IsZero()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "", syncService.GetStatus()["last_sync_error"])

	rec = serve(t, rt, http.MethodPost, "/v1/cron/unknown/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)

	rec = serve(t, rt, http.MethodGet, "/v1/cron", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sync_cron":"*/5 * * * *"`)
}

func TestRunCronJob_WithoutService(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

	rec := serve(t, rt, http.MethodPost, "/v1/cron/all/run", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
