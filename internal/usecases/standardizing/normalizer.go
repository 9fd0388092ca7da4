package standardizing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-dashboard-api/internal/domain"
)

const impressionsField = "impressions"

// platformFields são os nomes nativos dos campos de cada plataforma.
// impressions tem o mesmo nome em todas elas.
type platformFields struct {
	Campaign string
	Adset    string
	Creative string
	Spend    string
	Clicks   string
}

var fieldsByPlatform = map[domain.Platform]platformFields{
	domain.PlatformFacebook: {
		Campaign: "campaign_name",
		Adset:    "media_buy_name",
		Creative: "ad_name",
		Spend:    "spend",
		Clicks:   "clicks",
	},
	domain.PlatformTwitter: {
		Campaign: "campaign",
		Adset:    "ad_group",
		Creative: "image_name",
		Spend:    "spend",
		Clicks:   "post_clicks",
	},
	domain.PlatformSnapchat: {
		Campaign: "campaign_name",
		Adset:    "ad_squad_name",
		Creative: "creative_name",
		Spend:    "cost",
		Clicks:   "post_clicks",
	},
}

func (s *Service) Normalize(platform domain.Platform, ads []domain.RawRecord, results domain.ResultsMap) []domain.CanonicalAd {
	fields, ok := fieldsByPlatform[platform]
	if !ok {
		for i := range ads {
			s.logger.WithFields(logrus.Fields{
				"platform": platform,
				"index":    i,
			}).Warn("standardize: unknown platform, skipping ad")
			s.metrics.IncSkipped(platform.String())
		}
		return []domain.CanonicalAd{}
	}

	normalized := make([]domain.CanonicalAd, 0, len(ads))
	for _, raw := range ads {
		ad := domain.CanonicalAd{
			Campaign: raw.String(fields.Campaign),
			Adset:    raw.String(fields.Adset),
			Creative: raw.String(fields.Creative),
		}
		ad.Spend = s.number(platform, raw, fields.Spend)
		ad.Impressions = s.counter(platform, raw, impressionsField)
		ad.Clicks = s.counter(platform, raw, fields.Clicks)
		ad.Results = results.Lookup(ad.MatchKey())

		normalized = append(normalized, ad)
	}

	s.metrics.IncNormalized(platform.String(), len(normalized))

	return normalized
}

func (s *Service) number(platform domain.Platform, raw domain.RawRecord, field string) float64 {
	value, ok := raw.Float(field)
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"platform": platform,
			"field":    field,
		}).Debug("standardize: numeric field missing or invalid, using 0")
	}
	return value
}

func (s *Service) counter(platform domain.Platform, raw domain.RawRecord, field string) int64 {
	value, ok := raw.Int(field)
	if !ok {
		s.logger.WithFields(logrus.Fields{
			"platform": platform,
			"field":    field,
		}).Debug("standardize: counter field missing or invalid, using 0")
	}
	return value
}
