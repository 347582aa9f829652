package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the application's Prometheus collectors.
type Metrics struct {
	// HTTP request totals (method, path, status_code)
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTP request latency (method, path)
	HTTPRequestDuration *prometheus.HistogramVec

	// Booking attempt totals by terminal outcome
	// (success, insufficient_seats, not_found, conflict_exhausted, system_error)
	BookingsTotal *prometheus.CounterVec

	// Write conflicts that triggered an engine-level retry
	BookingRetriesTotal prometheus.Counter

	// End-to-end latency of Reserve, including backoff
	BookingDuration prometheus.Histogram

	// Availability cache lookups (result: hit, miss)
	CacheLookupsTotal *prometheus.CounterVec

	// Audit entries by recorder status (recorded, failed, dropped)
	AuditEntriesTotal *prometheus.CounterVec
}

// New creates Metrics registered on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors on the given registry.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Total number of booking attempts by terminal outcome",
			},
			[]string{"outcome"},
		),
		BookingRetriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "booking_retries_total",
				Help: "Write conflicts that triggered a booking retry",
			},
		),
		BookingDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "booking_duration_seconds",
				Help:    "Time spent in Reserve including retry backoff",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
		),
		CacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "availability_cache_lookups_total",
				Help: "Availability cache lookups by result",
			},
			[]string{"result"},
		),
		AuditEntriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_entries_total",
				Help: "Audit entries by recorder status",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.BookingRetriesTotal,
		m.BookingDuration,
		m.CacheLookupsTotal,
		m.AuditEntriesTotal,
	)

	return m
}

// Default metrics instance
var defaultMetrics *Metrics

// Init initializes the default metrics instance.
func Init() *Metrics {
	defaultMetrics = New()
	return defaultMetrics
}

// Get returns the default metrics instance.
func Get() *Metrics {
	return defaultMetrics
}
