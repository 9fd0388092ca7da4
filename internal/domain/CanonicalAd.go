package domain

import (
	"strconv"
	"strings"
)

// MatchKeySeparator separa os três campos que compõem a chave de junção
const MatchKeySeparator = "|"

// MatchKey correlaciona resultados do analytics com anúncios das plataformas.
// A comparação é exata: sem normalização de caixa ou espaços.
type MatchKey string

func NewMatchKey(campaign, adset, creative string) MatchKey {
	return MatchKey(campaign + MatchKeySeparator + adset + MatchKeySeparator + creative)
}

// ResultsMap acumula os resultados do analytics por chave de junção
type ResultsMap map[MatchKey]float64

// Lookup retorna a soma dos resultados da chave ou 0 quando ela não existe
func (m ResultsMap) Lookup(key MatchKey) float64 {
	return m[key]
}

// CanonicalAd é o formato unificado de um anúncio, independente da plataforma
type CanonicalAd struct {
	Campaign    string  `json:"campaign"`
	Adset       string  `json:"adset"`
	Creative    string  `json:"creative"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Results     float64 `json:"results"`
}

func (a CanonicalAd) MatchKey() MatchKey {
	return NewMatchKey(a.Campaign, a.Adset, a.Creative)
}

// CardKey identifica o card do anúncio na listagem. O índice desempata
// anúncios com a mesma chave vindos de plataformas diferentes.
func (a CanonicalAd) CardKey(index int) string {
	return strings.Join([]string{a.Campaign, a.Adset, a.Creative, strconv.Itoa(index)}, MatchKeySeparator)
}
