package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics agrupa as métricas do pipeline de padronização de anúncios
type Metrics struct {
	registry *prometheus.Registry

	DatasetRefreshes *prometheus.CounterVec
	RefreshDuration  prometheus.Histogram
	StandardizedAds  prometheus.Gauge
	NormalizedAds    *prometheus.CounterVec
	SkippedAds       *prometheus.CounterVec
}

// New cria as métricas em um registry próprio, para que várias instâncias
// (por exemplo em testes) não conflitem no registry global
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DatasetRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_refresh_total",
				Help:      "Total number of dataset refreshes by status",
			},
			[]string{"status"},
		),
		RefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "refresh_duration_seconds",
				Help:      "Time spent fetching and standardizing the dataset",
				Buckets:   prometheus.DefBuckets,
			},
		),
		StandardizedAds: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "standardized_ads",
				Help:      "Number of ads in the current snapshot",
			},
		),
		NormalizedAds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "normalized_ads_total",
				Help:      "Total number of ads normalized by platform",
			},
			[]string{"platform"},
		),
		SkippedAds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "skipped_ads_total",
				Help:      "Total number of ads skipped because of an unknown platform",
			},
			[]string{"platform"},
		),
	}
}

// Handler expõe as métricas no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRefresh(status string, seconds float64) {
	if m == nil {
		return
	}
	m.DatasetRefreshes.WithLabelValues(status).Inc()
	m.RefreshDuration.Observe(seconds)
}

func (m *Metrics) SetStandardizedAds(count int) {
	if m == nil {
		return
	}
	m.StandardizedAds.Set(float64(count))
}

func (m *Metrics) IncNormalized(platform string, count int) {
	if m == nil {
		return
	}
	m.NormalizedAds.WithLabelValues(platform).Add(float64(count))
}

func (m *Metrics) IncSkipped(platform string) {
	if m == nil {
		return
	}
	m.SkippedAds.WithLabelValues(platform).Inc()
}
