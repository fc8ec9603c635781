package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRegistersAndCounts(t *testing.T) {
	c := NewMetricsCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	c.StoreChanged("charges")
	c.StoreChanged("charges")
	c.ChargeWrites("verify", 2, 1)
	c.ObserveRequest("GET", "/api/v1/health", 200, 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.storeChanges.WithLabelValues("charges")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.chargeTransitions.WithLabelValues("verify", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.chargeTransitions.WithLabelValues("verify", "failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/v1/health", "200")))
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.StoreChanged("rooms")
		c.ChargeWrites("delete", 1, 0)
		c.NotificationEmitted("payment")
		c.SchedulerRun("job", "SUCCESS")
		c.ChargesSkipped(3)
		c.DashboardRecomputed()
		c.ObserveRequest("GET", "/", 200, time.Second)
	})
}
