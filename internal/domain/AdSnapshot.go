package domain

import (
	"time"
)

// AdSnapshot guarda a última lista padronizada obtida com sucesso
type AdSnapshot struct {
	ID        string        `json:"id"`
	Ads       []CanonicalAd `json:"ads"`
	FetchedAt time.Time     `json:"fetched_at"`
}

type SortMode string

const (
	SortNone SortMode = ""
	SortAsc  SortMode = "asc"
	SortDesc SortMode = "desc"
)

func (m SortMode) IsValid() bool {
	return m == SortNone || m == SortAsc || m == SortDesc
}

// AdQuery são os parâmetros de busca e ordenação do dashboard
type AdQuery struct {
	Search string
	Sort   SortMode
}

type AdCard struct {
	Key string `json:"key"`
	CanonicalAd
}

type AdTotals struct {
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Results     float64 `json:"results"`
}

type AdListResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	FetchedAt  time.Time `json:"fetched_at"`
	Search     string    `json:"search"`
	Sort       SortMode  `json:"sort"`
	Total      int       `json:"total"`
	Count      int       `json:"count"`
	Totals     AdTotals  `json:"totals"`
	Ads        []AdCard  `json:"ads"`
}

type StandardizeResponse struct {
	Count int           `json:"count"`
	Ads   []CanonicalAd `json:"ads"`
}
