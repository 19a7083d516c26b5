// Package observability métricas Prometheus de la API.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics métricas de la aplicación en un registry propio (evita colisiones al crear varias apps en tests).
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	authEvents      *prometheus.CounterVec
	recordsCreated  *prometheus.CounterVec
}

// NewMetrics crea el registry y registra las métricas junto a las del runtime de Go.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "udyog_http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP por ruta.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "udyog_http_requests_total",
				Help: "Peticiones HTTP por ruta y código.",
			},
			[]string{"method", "route", "status"},
		),
		authEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "udyog_auth_events_total",
				Help: "Eventos de autenticación (register, login_ok, login_failed, logout).",
			},
			[]string{"event"},
		),
		recordsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "udyog_records_created_total",
				Help: "Registros creados por recurso.",
			},
			[]string{"resource"},
		),
	}
}

// ObserveRequest registra duración y código de una petición.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
}

// IncrAuthEvent incrementa el contador de un evento de autenticación.
func (m *Metrics) IncrAuthEvent(event string) {
	m.authEvents.WithLabelValues(event).Inc()
}

// IncrCreated incrementa el contador de altas de un recurso.
func (m *Metrics) IncrCreated(resource string) {
	m.recordsCreated.WithLabelValues(resource).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
