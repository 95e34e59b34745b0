package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты для доменных счетчиков
const (
	ResultSuccess    = "success"
	ResultValidation = "validation_error"
	ResultConflict   = "conflict"
	ResultError      = "error"
	ResultDropped    = "dropped"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для nil-получателя: сервис может работать с выключенными метриками
type Metrics struct {
	serviceName string

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec

	reservations         *prometheus.CounterVec
	availabilityDegraded *prometheus.CounterVec
	notifications        *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_submitted_total",
			Help: "Reservation submissions by result",
		}, []string{"service", "result"}),
		availabilityDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_degraded_total",
			Help: "Availability reads answered with all slots open because the store was unreachable",
		}, []string{"service"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Outbound notifications by kind and result",
		}, []string{"service", "kind", "result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.reservations,
		m.availabilityDegraded,
		m.notifications,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil && err != sql.ErrNoRows {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(m.serviceName).Set(float64(stats.OpenConnections))
	m.dbInUseConns.WithLabelValues(m.serviceName).Set(float64(stats.InUse))
	m.dbIdleConns.WithLabelValues(m.serviceName).Set(float64(stats.Idle))
}

// IncReservation фиксирует результат отправки бронирования
func (m *Metrics) IncReservation(result string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(m.serviceName, result).Inc()
}

// IncAvailabilityDegraded фиксирует деградированный ответ о доступности слотов
func (m *Metrics) IncAvailabilityDegraded() {
	if m == nil {
		return
	}
	m.availabilityDegraded.WithLabelValues(m.serviceName).Inc()
}

// IncNotification фиксирует результат отправки уведомления
func (m *Metrics) IncNotification(kind, result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(m.serviceName, kind, result).Inc()
}
