package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CacheHitsTotal     prometheus.Counter
	CacheMissesTotal   prometheus.Counter
	FetchFailuresTotal *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHitsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_cache_hits_total",
				Help: "Total number of rate lookups served from the cache",
			},
		),
		CacheMissesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_cache_misses_total",
				Help: "Total number of rate lookups that went to the source",
			},
		),
		FetchFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_fetch_failures_total",
				Help: "Total number of failed rate fetches by failure kind",
			},
			[]string{"kind"},
		),
	}
}
