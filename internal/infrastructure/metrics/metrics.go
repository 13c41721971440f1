package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics métricas Prometheus de la API. Los métodos aceptan receptor nil (métricas apagadas).
type Metrics struct {
	// Requests HTTP por método, ruta y status
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Alertas insertadas por la generación automática, por tipo
	AlertasGeneradas *prometheus.CounterVec

	// Lecturas del cache de estadísticas: hit | miss | error
	StatsCache *prometheus.CounterVec
}

// New registra las métricas en reg. En tests conviene pasar prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "banos_http_requests_total",
			Help: "Total de requests HTTP por método, ruta y status",
		}, []string{"method", "route", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "banos_http_request_duration_seconds",
			Help:    "Duración de los requests HTTP por método y ruta",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),

		AlertasGeneradas: f.NewCounterVec(prometheus.CounterOpts{
			Name: "banos_alertas_generadas_total",
			Help: "Alertas creadas por la generación automática, por tipo",
		}, []string{"tipo"}),

		StatsCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "banos_stats_cache_total",
			Help: "Lecturas del cache de estadísticas del dashboard por resultado",
		}, []string{"result"}),
	}
}

// ObserveHTTP registra un request terminado.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// AddAlertas suma n alertas generadas del tipo indicado.
func (m *Metrics) AddAlertas(tipo string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.AlertasGeneradas.WithLabelValues(tipo).Add(float64(n))
}

// CacheResult registra el resultado de una lectura del cache.
func (m *Metrics) CacheResult(result string) {
	if m != nil {
		m.StatsCache.WithLabelValues(result).Inc()
	}
}
