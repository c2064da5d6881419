package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	CalendarDaysComputed *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре (используется promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"operation", "status"},
		),
		DBOpenConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_open_connections",
				Help:        "Open database connections.",
				ConstLabels: constLabels,
			},
		),
		DBInUse: factory.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_in_use_connections",
				Help:        "Database connections in use.",
				ConstLabels: constLabels,
			},
		),
		DBIdle: factory.NewGauge(
			prometheus.GaugeOpts{
				Name:        "db_idle_connections",
				Help:        "Idle database connections.",
				ConstLabels: constLabels,
			},
		),
		CalendarDaysComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "scheduler_calendar_days_computed_total",
				Help:        "Calendar days computed by the scheduler, by resulting status.",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
	}
}

// ObserveDayStatus увеличивает счетчик посчитанных дней с указанным статусом.
// Безопасно вызывать на nil (метрики выключены).
func (m *Metrics) ObserveDayStatus(status string) {
	if m == nil {
		return
	}
	m.CalendarDaysComputed.WithLabelValues(status).Inc()
}
