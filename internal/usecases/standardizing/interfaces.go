package standardizing

import (
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

// Standardizer converte o payload bruto do feed em anúncios no formato canônico
type Standardizer interface {
	// Aggregate soma os resultados do analytics por chave de junção
	Aggregate(events []domain.RawRecord) domain.ResultsMap

	// Normalize mapeia os anúncios de uma plataforma para o formato canônico
	// e anexa os resultados do analytics
	Normalize(platform domain.Platform, ads []domain.RawRecord, results domain.ResultsMap) []domain.CanonicalAd

	// Standardize executa a agregação e a normalização de todas as plataformas
	Standardize(dataset *domain.AdDataset) ([]domain.CanonicalAd, error)
}
