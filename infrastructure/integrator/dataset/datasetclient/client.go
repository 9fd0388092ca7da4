package datasetclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/ad-dashboard-api/internal/config"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

type Client interface {
	FetchDataset(ctx context.Context) (*domain.AdDataset, error)
}

// maxDatasetBytes limita o corpo lido do feed
const maxDatasetBytes = 50 << 20

type DatasetClient struct {
	httpClient   *http.Client
	config       *config.Config
	maxBodyBytes int64
}

func NewClient(cfg *config.Config) Client {
	return &DatasetClient{
		httpClient: &http.Client{
			Timeout: cfg.Dataset.Timeout,
		},
		config:       cfg,
		maxBodyBytes: maxDatasetBytes,
	}
}
