package standardizing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

// Campos do feed do analytics usados na chave de junção
const (
	analyticsCampaignField = "utm_campaign"
	analyticsMediumField   = "utm_medium"
	analyticsContentField  = "utm_content"
	analyticsResultsField  = "results"
)

// AnalyticsMatchKey deriva a chave de um evento do analytics. A ordem dos
// campos precisa ser a mesma usada em CanonicalAd.MatchKey.
func AnalyticsMatchKey(event domain.RawRecord) domain.MatchKey {
	return domain.NewMatchKey(
		event.String(analyticsCampaignField),
		event.String(analyticsMediumField),
		event.String(analyticsContentField),
	)
}

func (s *Service) Aggregate(events []domain.RawRecord) domain.ResultsMap {
	results := make(domain.ResultsMap, len(events))

	for _, event := range events {
		key := AnalyticsMatchKey(event)

		value, ok := event.Float(analyticsResultsField)
		if !ok {
			s.logger.WithFields(logrus.Fields{
				"match_key": key,
				"results":   event[analyticsResultsField],
			}).Debug("standardize: analytics results missing or not numeric, counting as 0")
		}

		results[key] += value
	}

	s.logger.WithFields(logrus.Fields{
		"events": len(events),
		"keys":   len(results),
	}).Debug("standardize: analytics results aggregated")

	return results
}
