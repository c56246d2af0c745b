package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserve(t *testing.T) {
	m := NewWithRegisterer("salon-console", prometheus.NewRegistry())

	m.ObserveCache("staff_roster", "hit")
	m.ObserveCache("staff_roster", "hit")
	m.ObserveStaffResolution("same")

	assert.Equal(t, 2.0, counterValue(t, m.CacheRequestsTotal.WithLabelValues("staff_roster", "hit")))
	assert.Equal(t, 0.0, counterValue(t, m.CacheRequestsTotal.WithLabelValues("staff_roster", "miss")))
	assert.Equal(t, 1.0, counterValue(t, m.StaffResolutionsTotal.WithLabelValues("same")))
}

func TestObserve_NilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCache("roster", "hit")
		m.ObserveStaffResolution("same")
	})
}
