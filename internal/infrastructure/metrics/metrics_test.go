package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promdto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/infrastructure/metrics"
)

func valor(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m promdto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetrics_CuentaAlertasYCache(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.AddAlertas("contrato", 2)
	m.AddAlertas("contrato", 0)
	m.AddAlertas("pago", 1)
	m.CacheResult("hit")
	m.ObserveHTTP("GET", "/api/clientes", "200", 15*time.Millisecond)

	assert.Equal(t, 2.0, valor(t, m.AlertasGeneradas.WithLabelValues("contrato")))
	assert.Equal(t, 1.0, valor(t, m.AlertasGeneradas.WithLabelValues("pago")))
	assert.Equal(t, 1.0, valor(t, m.StatsCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, valor(t, m.HTTPRequests.WithLabelValues("GET", "/api/clientes", "200")))
}

func TestMetrics_ReceptorNil(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.AddAlertas("pago", 3)
		m.CacheResult("miss")
		m.ObserveHTTP("GET", "/", "200", time.Second)
	})
}
