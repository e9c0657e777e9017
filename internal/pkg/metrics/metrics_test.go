package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/empresa/{id}", "GET", "200"))

	ObserveHTTPRequest("/api/v1/empresa/{id}", "GET", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/empresa/{id}", "GET", "200"))
	assert.Equal(t, before+1, after)
}

func TestObserveDBRequest(t *testing.T) {
	before := testutil.ToFloat64(dbRequestsTotal.WithLabelValues("companies.find_by_id", "false"))

	ObserveDBRequest("companies.find_by_id", false, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(dbRequestsTotal.WithLabelValues("companies.find_by_id", "false")))
}

func TestObserveCacheAndRateLimit(t *testing.T) {
	ObserveCacheRequest("blogpost.get", true, time.Microsecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(cacheRequestsTotal.WithLabelValues("blogpost.get", "true")), 1.0)

	ObserveRateLimit("api", RateLimitRejected)
	assert.GreaterOrEqual(t, testutil.ToFloat64(rateLimitDecisions.WithLabelValues("api", RateLimitRejected)), 1.0)
}
