package domain

import (
	"math"

	"github.com/spf13/cast"
)

// RawRecord é um registro bruto como recebido do feed, com os nomes de
// campos nativos de cada plataforma
type RawRecord map[string]any

// String lê um campo textual. Campos ausentes ou nulos viram "".
func (r RawRecord) String(field string) string {
	value, ok := r[field]
	if !ok || value == nil {
		return ""
	}

	return cast.ToString(value)
}

// Float lê um campo numérico. O segundo retorno é false quando o campo
// está ausente, é booleano, não pode ser convertido ou não é finito
// (NaN, Inf); nesse caso o valor é 0.
func (r RawRecord) Float(field string) (float64, bool) {
	value, ok := r[field]
	if !ok || value == nil {
		return 0, false
	}

	if _, isBool := value.(bool); isBool {
		return 0, false
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// Int funciona como Float, para contadores inteiros. Valores fora da faixa
// de int64 são inválidos; frações são truncadas.
func (r RawRecord) Int(field string) (int64, bool) {
	f, ok := r.Float(field)
	if !ok {
		return 0, false
	}

	// float64(math.MaxInt64) arredonda para 2^63, que já não cabe em int64
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}

	return int64(f), true
}

// AdDataset é o payload completo do feed de anúncios. Arrays ausentes são
// decodificados como vazios.
type AdDataset struct {
	GoogleAnalytics []RawRecord `json:"google_analytics"`
	FacebookAds     []RawRecord `json:"facebook_ads"`
	TwitterAds      []RawRecord `json:"twitter_ads"`
	SnapchatAds     []RawRecord `json:"snapchat_ads"`
}

// AdsByPlatform retorna a coleção bruta de uma plataforma
func (d *AdDataset) AdsByPlatform(platform Platform) []RawRecord {
	switch platform {
	case PlatformFacebook:
		return d.FacebookAds
	case PlatformTwitter:
		return d.TwitterAds
	case PlatformSnapchat:
		return d.SnapchatAds
	}

	return nil
}

// TotalAds soma os anúncios de todas as plataformas
func (d *AdDataset) TotalAds() int {
	return len(d.FacebookAds) + len(d.TwitterAds) + len(d.SnapchatAds)
}
