package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/infrastructure/integrator/dataset"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
	"github.com/vfg2006/ad-dashboard-api/internal/metrics"
	"github.com/vfg2006/ad-dashboard-api/internal/usecases/standardizing"
	"github.com/vfg2006/ad-dashboard-api/pkg/utils"
)

var ErrNoSnapshot = errors.New("nenhum dataset carregado ainda")

type Service struct {
	datasetService dataset.DatasetIntegrator
	standardizer   standardizing.Standardizer
	metrics        *metrics.Metrics

	// refreshMu serializa os refreshes para que uma busca mais antiga não
	// sobrescreva um snapshot mais novo
	refreshMu sync.Mutex

	mu                     sync.RWMutex
	snapshot               *domain.AdSnapshot
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
	refreshCount           int
	failedRefreshCount     int
}

func NewService(
	datasetService dataset.DatasetIntegrator,
	standardizer standardizing.Standardizer,
	m *metrics.Metrics,
) *Service {
	return &Service{
		datasetService: datasetService,
		standardizer:   standardizer,
		metrics:        m,
	}
}

// Refresh só padroniza depois que o payload foi totalmente decodificado e só
// troca o snapshot quando todas as etapas terminam sem erro
func (s *Service) Refresh(ctx context.Context) (*domain.AdSnapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	startTime := time.Now()

	s.mu.Lock()
	s.lastRefreshStartedAt = startTime
	s.mu.Unlock()

	snapshot, err := s.buildSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefreshCompletedAt = time.Now()
	if err != nil {
		s.failedRefreshCount++
		s.lastRefreshError = err.Error()
		s.metrics.ObserveRefresh(metrics.StatusError, time.Since(startTime).Seconds())

		logrus.WithError(err).Error("Erro ao atualizar anúncios, mantendo a lista anterior")
		return nil, err
	}

	s.refreshCount++
	s.lastRefreshError = ""
	s.snapshot = snapshot
	s.metrics.ObserveRefresh(metrics.StatusSuccess, time.Since(startTime).Seconds())
	s.metrics.SetStandardizedAds(len(snapshot.Ads))

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"ads":         len(snapshot.Ads),
		"duration":    time.Since(startTime).String(),
	}).Info("Anúncios atualizados com sucesso")

	return snapshot, nil
}

func (s *Service) buildSnapshot(ctx context.Context) (*domain.AdSnapshot, error) {
	payload, err := s.datasetService.GetDataset(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar dataset")
	}

	ads, err := s.standardizer.Standardize(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao padronizar dataset")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do snapshot")
	}

	return &domain.AdSnapshot{
		ID:        id,
		Ads:       ads,
		FetchedAt: time.Now(),
	}, nil
}

func (s *Service) ListAds(query domain.AdQuery) (*domain.AdListResponse, error) {
	if !query.Sort.IsValid() {
		return nil, errors.Wrapf(ErrInvalidSortMode, "recebido: %q", query.Sort)
	}

	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot == nil {
		return nil, ErrNoSnapshot
	}

	filtered := FilterByCampaign(snapshot.Ads, query.Search)

	sorted, err := SortBySpend(filtered, query.Sort)
	if err != nil {
		return nil, err
	}

	return &domain.AdListResponse{
		SnapshotID: snapshot.ID,
		FetchedAt:  snapshot.FetchedAt,
		Search:     query.Search,
		Sort:       query.Sort,
		Total:      len(snapshot.Ads),
		Count:      len(sorted),
		Totals:     SumTotals(sorted),
		Ads:        BuildCards(sorted),
	}, nil
}

func (s *Service) Standardize(payload *domain.AdDataset) (*domain.StandardizeResponse, error) {
	ads, err := s.standardizer.Standardize(payload)
	if err != nil {
		return nil, err
	}

	return &domain.StandardizeResponse{
		Count: len(ads),
		Ads:   ads,
	}, nil
}

func (s *Service) GetStatus() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := map[string]any{
		"refresh_count":             s.refreshCount,
		"failed_refresh_count":      s.failedRefreshCount,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.lastRefreshError,
		"ads":                       0,
	}

	if s.snapshot != nil {
		status["snapshot_id"] = s.snapshot.ID
		status["fetched_at"] = s.snapshot.FetchedAt
		status["ads"] = len(s.snapshot.Ads)
	}

	return status
}
