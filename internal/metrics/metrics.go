package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Dish generation metrics
var (
	DishGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDishGenerationsTotal,
			Help: HelpTextDishGenerationsTotal,
		},
		[]string{LabelOutcome},
	)

	DishGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDishGenerationDuration,
			Help:    HelpTextDishGenerationDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	CandidatesEnumerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCandidatesEnumerated,
			Help: HelpTextCandidatesEnumerated,
		},
	)

	DishesGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDishesGenerated,
			Help:    HelpTextDishesGenerated,
			Buckets: DishCountBuckets,
		},
	)
)

// Catalog cache metrics
var (
	CatalogCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheHits,
		},
		[]string{LabelKind},
	)

	CatalogCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheMisses,
			Help: HelpTextCatalogCacheMisses,
		},
		[]string{LabelKind},
	)
)

// RecordGeneration records the outcome of one dish generation.
// candidates and dishes are only meaningful for successful generations.
func RecordGeneration(outcome string, candidates, dishes int, duration time.Duration) {
	DishGenerationsTotal.WithLabelValues(outcome).Inc()
	DishGenerationDuration.Observe(duration.Seconds())
	if candidates > 0 {
		CandidatesEnumerated.Add(float64(candidates))
	}
	if outcome == OutcomeSuccess {
		DishesGenerated.Observe(float64(dishes))
	}
}
