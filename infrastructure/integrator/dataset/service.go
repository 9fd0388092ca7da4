package dataset

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/infrastructure/integrator/dataset/datasetclient"
	"github.com/vfg2006/ad-dashboard-api/internal/config"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_dataset_integrator.go -package=mocks

type DatasetIntegrator interface {
	GetDataset(ctx context.Context) (*domain.AdDataset, error)
}

type DatasetService struct {
	cfg    *config.Config
	Client datasetclient.Client
}

func New(cfg *config.Config, client datasetclient.Client) DatasetIntegrator {
	return &DatasetService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DatasetService) GetDataset(ctx context.Context) (*domain.AdDataset, error) {
	startTime := time.Now()

	dataset, err := s.Client.FetchDataset(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"url":   s.cfg.Dataset.URL,
			"error": err.Error(),
		}).Error("dataset: failed to fetch ad dataset")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"url":              s.cfg.Dataset.URL,
		"duration":         time.Since(startTime).String(),
		"analytics_events": len(dataset.GoogleAnalytics),
		"facebook_ads":     len(dataset.FacebookAds),
		"twitter_ads":      len(dataset.TwitterAds),
		"snapchat_ads":     len(dataset.SnapchatAds),
	}).Debug("dataset: ad dataset fetched")

	return dataset, nil
}
