// Package metrics defines the Prometheus collectors of the service.
//
// Collectors register with the default registry on package load; the
// /metrics route serves that registry.
package metrics

import (
	"time"

	"gusto/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequestsTotal counts recommendation requests by mode.
	RecommendationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gusto_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"mode"},
	)

	// RecommendationCandidates tracks how many restaurants survived filtering.
	RecommendationCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gusto_recommendation_candidates",
			Help:    "Number of candidate restaurants per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"mode"},
	)

	// RecommendationEmptyTotal counts requests that returned no restaurant.
	RecommendationEmptyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gusto_recommendation_empty_total",
			Help: "Total number of recommendation requests with no result",
		},
		[]string{"mode"},
	)

	// RecommendationDuration tracks end-to-end recommendation latency.
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gusto_recommendation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// SummaryCacheHitsTotal counts rating summaries served from Redis.
	SummaryCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gusto_rating_summary_cache_hits_total",
			Help: "Total number of rating summary cache hits",
		},
	)

	// SummaryCacheMissesTotal counts rating summaries computed from the datastore.
	SummaryCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gusto_rating_summary_cache_misses_total",
			Help: "Total number of rating summary cache misses",
		},
	)

	// DBQueryDuration tracks statement latency by kind (select, insert, ...).
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gusto_db_query_duration_seconds",
			Help:    "Duration of database statements in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"statement"},
	)

	// DBQueryErrorsTotal counts failed statements by kind.
	DBQueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gusto_db_query_errors_total",
			Help: "Total number of failed database statements",
		},
		[]string{"statement"},
	)
)

// RecordQuery records one database statement.
func RecordQuery(statement string, elapsed time.Duration, failed bool) {
	DBQueryDuration.WithLabelValues(statement).Observe(elapsed.Seconds())
	if failed {
		DBQueryErrorsTotal.WithLabelValues(statement).Inc()
	}
}

// RecordSummaryCacheHit records a cache hit.
func RecordSummaryCacheHit() {
	SummaryCacheHitsTotal.Inc()
}

// RecordSummaryCacheMiss records a cache miss.
func RecordSummaryCacheMiss() {
	SummaryCacheMissesTotal.Inc()
}

type recommendationMetrics struct{}

// NewRecommendationMetrics returns the Prometheus-backed recorder.
func NewRecommendationMetrics() service.RecommendationMetrics {
	return recommendationMetrics{}
}

func (recommendationMetrics) ObserveRecommendation(mode string, candidates, results int, elapsed time.Duration) {
	RecommendationRequestsTotal.WithLabelValues(mode).Inc()
	RecommendationCandidates.WithLabelValues(mode).Observe(float64(candidates))
	RecommendationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if results == 0 {
		RecommendationEmptyTotal.WithLabelValues(mode).Inc()
	}
}
