package dashboarding

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
	"github.com/vfg2006/ad-dashboard-api/pkg/utils"
)

var ErrInvalidSortMode = errors.New("modo de ordenação inválido, valores aceitos: asc, desc")

// FilterByCampaign mantém os anúncios cuja campanha contém search, sem
// diferenciar maiúsculas. Busca vazia mantém todos. Sempre retorna um novo slice.
func FilterByCampaign(ads []domain.CanonicalAd, search string) []domain.CanonicalAd {
	needle := strings.ToLower(search)

	filtered := make([]domain.CanonicalAd, 0, len(ads))
	for _, ad := range ads {
		if strings.Contains(strings.ToLower(ad.Campaign), needle) {
			filtered = append(filtered, ad)
		}
	}

	return filtered
}

// SortBySpend ordena uma cópia dos anúncios pelo investimento. A ordenação é
// estável; SortNone devolve a cópia na ordem original.
func SortBySpend(ads []domain.CanonicalAd, mode domain.SortMode) ([]domain.CanonicalAd, error) {
	if !mode.IsValid() {
		return nil, errors.Wrapf(ErrInvalidSortMode, "recebido: %q", mode)
	}

	sorted := slices.Clone(ads)
	if sorted == nil {
		sorted = []domain.CanonicalAd{}
	}

	switch mode {
	case domain.SortAsc:
		slices.SortStableFunc(sorted, func(a, b domain.CanonicalAd) int {
			return compareSpend(a.Spend, b.Spend)
		})
	case domain.SortDesc:
		slices.SortStableFunc(sorted, func(a, b domain.CanonicalAd) int {
			return compareSpend(b.Spend, a.Spend)
		})
	}

	return sorted, nil
}

func compareSpend(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// BuildCards gera os cards com a chave campaign|adset|creative|index
func BuildCards(ads []domain.CanonicalAd) []domain.AdCard {
	cards := make([]domain.AdCard, 0, len(ads))
	for i, ad := range ads {
		cards = append(cards, domain.AdCard{
			Key:         ad.CardKey(i),
			CanonicalAd: ad,
		})
	}
	return cards
}

func SumTotals(ads []domain.CanonicalAd) domain.AdTotals {
	var totals domain.AdTotals
	for _, ad := range ads {
		totals.Spend += ad.Spend
		totals.Impressions += ad.Impressions
		totals.Clicks += ad.Clicks
		totals.Results += ad.Results
	}

	totals.Spend = utils.RoundWithTwoDecimalPlace(totals.Spend)

	return totals
}
