// Package metrics provides Prometheus metrics collection for the number classifier.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ClassificationsTotal counts classify requests by outcome (hit, miss, invalid).
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "number_classifications_total",
			Help: "Total number of number classifications",
		},
		[]string{"outcome"},
	)

	// ClassificationDuration tracks how long a classification takes end to end.
	ClassificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "number_classification_duration_seconds",
			Help:    "Number classification duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"outcome"},
	)

	// FactFetchesTotal counts fact provider calls by result.
	FactFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fact_fetches_total",
			Help: "Total number of fun fact fetches",
		},
		[]string{"result"},
	)

	// FactFetchDuration tracks remote fact fetch latency.
	FactFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fact_fetch_duration_seconds",
			Help:    "Fun fact fetch duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks the number of memoized classifications.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// PersistedFacts tracks the number of facts held by the fact store.
	PersistedFacts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "persisted_facts",
			Help: "Number of fun facts held by the persistent fact store",
		},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			// unmatched routes share one label to keep cardinality bounded
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordClassification records metrics for one classify request.
func RecordClassification(duration time.Duration, outcome string) {
	ClassificationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	ClassificationsTotal.WithLabelValues(outcome).Inc()
}

// RecordFactFetch records metrics for one remote fact fetch.
func RecordFactFetch(duration time.Duration, result string) {
	FactFetchDuration.Observe(duration.Seconds())
	FactFetchesTotal.WithLabelValues(result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize sets the memoized classification gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

// UpdatePersistedFacts sets the persisted fact gauge.
func UpdatePersistedFacts(count int) {
	PersistedFacts.Set(float64(count))
}

// SetCircuitBreakerState records a breaker state as its numeric value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
