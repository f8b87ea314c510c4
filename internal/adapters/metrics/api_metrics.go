package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/spacetraders-sdk/pkg/transport"
)

var _ transport.Recorder = (*APIMetricsCollector)(nil)

// APIMetricsCollector records every HTTP exchange made by a transport.Session
type APIMetricsCollector struct {
	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiRetries         *prometheus.CounterVec
	apiRateLimitWait   *prometheus.HistogramVec
}

// NewAPIMetricsCollector creates a new API metrics collector
func NewAPIMetricsCollector(namespace string) *APIMetricsCollector {
	namespace = orDefault(namespace)
	return &APIMetricsCollector{
		// Total API requests by method, endpoint, and status code
		apiRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_requests_total",
				Help:      "Total number of API requests by method, endpoint, and status code",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		apiRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_request_duration_seconds",
				Help:      "API request duration distribution",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"method", "endpoint"},
		),

		apiRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_retries_total",
				Help:      "Total number of API retry attempts",
			},
			[]string{"method", "endpoint", "reason"},
		),

		apiRateLimitWait: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "api_rate_limit_wait_seconds",
				Help:      "Time spent waiting for rate limiter",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"method", "endpoint"},
		),
	}
}

// Register registers all API metrics with reg
func (c *APIMetricsCollector) Register(reg prometheus.Registerer) error {
	return register(reg,
		c.apiRequestsTotal,
		c.apiRequestDuration,
		c.apiRetries,
		c.apiRateLimitWait,
	)
}

// RecordRequest records an API request completion
func (c *APIMetricsCollector) RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	c.apiRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	c.apiRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRetry records an API retry attempt
func (c *APIMetricsCollector) RecordRetry(method, endpoint, reason string) {
	c.apiRetries.WithLabelValues(method, endpoint, reason).Inc()
}

// RecordThrottleWait records time spent waiting for rate limiter
func (c *APIMetricsCollector) RecordThrottleWait(method, endpoint string, wait time.Duration) {
	c.apiRateLimitWait.WithLabelValues(method, endpoint).Observe(wait.Seconds())
}
