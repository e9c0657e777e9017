package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "remoteready",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path", "method", "status_code"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remoteready",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"path", "method", "status_code"})

	// Banco de dados
	dbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "remoteready",
		Name:      "db_request_duration_seconds",
		Help:      "Duration of database requests.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"method", "success"})

	dbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remoteready",
		Name:      "db_requests_total",
		Help:      "Total number of database requests.",
	}, []string{"method", "success"})

	// Cache
	cacheRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "remoteready",
		Name:      "cache_request_duration_seconds",
		Help:      "Duration of cache requests.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"method", "cache_hit"})

	cacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remoteready",
		Name:      "cache_requests_total",
		Help:      "Total number of cache requests.",
	}, []string{"method", "cache_hit"})

	// Rate limiting
	rateLimitDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "remoteready",
		Name:      "rate_limit_decisions_total",
		Help:      "Rate limiter decisions by policy and outcome.",
	}, []string{"policy", "outcome"})
)

// Resultados possíveis do rate limiter.
const (
	RateLimitAllowed  = "allowed"
	RateLimitQueued   = "queued"
	RateLimitRejected = "rejected"
	RateLimitBypassed = "bypassed"
)

// ObserveHTTPRequest mede o tempo de uma requisição HTTP.
func ObserveHTTPRequest(path, method, statusCode string, duration time.Duration) {
	httpRequestDuration.WithLabelValues(path, method, statusCode).Observe(duration.Seconds())
	httpRequestsTotal.WithLabelValues(path, method, statusCode).Inc()
}

// ObserveDBRequest mede o tempo de uma chamada ao banco.
func ObserveDBRequest(method string, success bool, duration time.Duration) {
	ok := strconv.FormatBool(success)
	dbRequestDuration.WithLabelValues(method, ok).Observe(duration.Seconds())
	dbRequestsTotal.WithLabelValues(method, ok).Inc()
}

// ObserveCacheRequest mede o tempo de uma consulta ao cache.
func ObserveCacheRequest(method string, hit bool, duration time.Duration) {
	hitStr := strconv.FormatBool(hit)
	cacheRequestDuration.WithLabelValues(method, hitStr).Observe(duration.Seconds())
	cacheRequestsTotal.WithLabelValues(method, hitStr).Inc()
}

// ObserveRateLimit conta uma decisão do rate limiter.
func ObserveRateLimit(policy, outcome string) {
	rateLimitDecisions.WithLabelValues(policy, outcome).Inc()
}
