package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "physiotime")

	m.ObserveHTTPRequest("GET", "/api/v1/services", 200, 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/services", 200, 20*time.Millisecond)
	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 409, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/services", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "409")))
}

func TestMetrics_SetPoolStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "physiotime")

	m.SetPoolStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 7})

	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbInUseConnections))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbIdleConnections))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbWaitCount))
}
