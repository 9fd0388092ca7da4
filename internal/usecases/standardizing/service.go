package standardizing

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
	"github.com/vfg2006/ad-dashboard-api/internal/metrics"
)

var ErrNilDataset = errors.New("dataset não informado")

type Service struct {
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
}

// NewService cria o padronizador. logger nil usa o logger padrão do logrus
// e metrics nil desativa as métricas.
func NewService(logger logrus.FieldLogger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		logger:  logger,
		metrics: m,
	}
}

// Standardize agrega o analytics uma vez e normaliza as plataformas na ordem
// facebook, twitter, snapchat, mantendo a ordem de entrada de cada uma.
// Anúncios com a mesma chave em plataformas diferentes não são deduplicados.
func (s *Service) Standardize(dataset *domain.AdDataset) ([]domain.CanonicalAd, error) {
	if dataset == nil {
		return nil, ErrNilDataset
	}

	results := s.Aggregate(dataset.GoogleAnalytics)

	ads := make([]domain.CanonicalAd, 0, dataset.TotalAds())
	for _, platform := range domain.Platforms {
		ads = append(ads, s.Normalize(platform, dataset.AdsByPlatform(platform), results)...)
	}

	s.logger.WithFields(logrus.Fields{
		"analytics_events": len(dataset.GoogleAnalytics),
		"ads":              len(ads),
	}).Info("standardize: dataset standardized")

	return ads, nil
}
