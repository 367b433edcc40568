package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateMetrics covers the aggregation pipeline: per-source fetch outcomes,
// which source ultimately served a snapshot, cache behavior and degraded
// (default-snapshot) responses.
type RateMetrics struct {
	SourceFetchTotal  *prometheus.CounterVec
	AggregationsTotal *prometheus.CounterVec
	CacheHitsTotal    prometheus.Counter
	CacheMissesTotal  prometheus.Counter
	DegradedTotal     prometheus.Counter
}

// New registers the rate metrics on reg. Tests pass a fresh
// prometheus.NewRegistry so repeated construction does not collide.
func New(reg prometheus.Registerer) *RateMetrics {
	factory := promauto.With(reg)
	return &RateMetrics{
		SourceFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_source_fetch_total",
				Help: "Fetch attempts per upstream quote source",
			},
			[]string{"source", "outcome"},
		),
		AggregationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_aggregations_total",
				Help: "Completed aggregations by the source that produced the snapshot",
			},
			[]string{"source"},
		),
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_cache_hits_total",
			Help: "Rate requests served from the fresh snapshot cache",
		}),
		CacheMissesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_cache_misses_total",
			Help: "Rate requests that triggered an aggregation attempt",
		}),
		DegradedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_degraded_responses_total",
			Help: "Responses served with the hard-coded default snapshot",
		}),
	}
}

func (m *RateMetrics) RecordSourceFetch(source string, ok bool) {
	outcome := "error"
	if ok {
		outcome = "success"
	}
	m.SourceFetchTotal.WithLabelValues(source, outcome).Inc()
}

func (m *RateMetrics) RecordAggregation(source string) {
	m.AggregationsTotal.WithLabelValues(source).Inc()
}

func (m *RateMetrics) RecordCacheHit()  { m.CacheHitsTotal.Inc() }
func (m *RateMetrics) RecordCacheMiss() { m.CacheMissesTotal.Inc() }
func (m *RateMetrics) RecordDegraded()  { m.DegradedTotal.Inc() }
