package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/internal/config"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

// Refresher é implementado pelo dashboard
type Refresher interface {
	Refresh(ctx context.Context) (*domain.AdSnapshot, error)
}

// DatasetSyncConfig representa a configuração do agendador de atualização do dataset
type DatasetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	OnStartup    bool
	Timeout      time.Duration
}

// DatasetSyncService agenda a busca e padronização periódica dos anúncios
type DatasetSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetSyncConfig
	refresher           Refresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetSyncService(refresher Refresher, appConfig *config.Config) *DatasetSyncService {
	syncConfig := DatasetSyncConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
		OnStartup:    appConfig.DatasetSync.OnStartup,
		Timeout:      appConfig.Dataset.Timeout,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"on_startup":    syncConfig.OnStartup,
	}).Info("Configuração do agendador de anúncios carregada")

	return &DatasetSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *DatasetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	if s.config.OnStartup {
		go s.syncDataset(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDataset atualiza o snapshot. Execuções sobrepostas são ignoradas e
// falhas não são repetidas até o próximo agendamento.
func (s *DatasetSyncService) syncDataset(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	_, err := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Error("Erro na sincronização de anúncios")
		return
	}

	s.lastSyncError = ""
	logrus.WithField("duration", s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String()).
		Info("Sincronização de anúncios concluída")
}

// TriggerManualSync inicia manualmente uma sincronização
func (s *DatasetSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de anúncios já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de anúncios")
	go s.syncDataset(context.WithoutCancel(ctx))
	return true
}

// IsRunning indica se existe uma sincronização em andamento
func (s *DatasetSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_on_startup":        s.config.OnStartup,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
