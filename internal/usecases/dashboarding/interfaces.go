package dashboarding

import (
	"context"

	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

// Dashboard mantém a última lista padronizada de anúncios e responde às
// consultas de busca e ordenação
type Dashboard interface {
	// Refresh busca o feed, padroniza e substitui o snapshot atual.
	// Em caso de erro o snapshot anterior é mantido.
	Refresh(ctx context.Context) (*domain.AdSnapshot, error)

	// ListAds filtra e ordena o snapshot atual
	ListAds(query domain.AdQuery) (*domain.AdListResponse, error)

	// Standardize padroniza um payload recebido diretamente
	Standardize(dataset *domain.AdDataset) (*domain.StandardizeResponse, error)

	// GetStatus retorna o estado do último refresh
	GetStatus() map[string]any
}
