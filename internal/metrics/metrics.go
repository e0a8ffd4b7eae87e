package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

const namespace = "agenda"

// Metrics holds the Prometheus collectors of the scheduling engine. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// AppointmentsTotal counts booking attempts by outcome.
	AppointmentsTotal *prometheus.CounterVec

	// TransitionsTotal counts status changes by target status.
	TransitionsTotal *prometheus.CounterVec

	// AvailabilityChanges counts block writes by operation and outcome.
	AvailabilityChanges *prometheus.CounterVec

	SlotsGenerated prometheus.Histogram

	LockWait prometheus.Histogram

	HTTPRequests *prometheus.CounterVec
}

// New creates a registry with the Go runtime collectors and the engine
// metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		AppointmentsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointments_total",
				Help:      "Booking attempts by result",
			},
			[]string{"result"},
		),

		TransitionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointment_transitions_total",
				Help:      "Appointment status transitions by target status",
			},
			[]string{"status"},
		),

		AvailabilityChanges: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_changes_total",
				Help:      "Availability block writes by operation and result",
			},
			[]string{"op", "result"},
		),

		SlotsGenerated: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "slots_generated",
				Help:      "Free slots returned per slot query",
				Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
			},
		),

		LockWait: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_lock_wait_seconds",
				Help:      "Time spent waiting for the provider schedule lock",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
			},
		),

		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncAppointment(result string) {
	if m == nil {
		return
	}
	m.AppointmentsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncTransition(status string) {
	if m == nil {
		return
	}
	m.TransitionsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) IncAvailability(op, result string) {
	if m == nil {
		return
	}
	m.AvailabilityChanges.WithLabelValues(op, result).Inc()
}

func (m *Metrics) ObserveSlots(n int) {
	if m == nil {
		return
	}
	m.SlotsGenerated.Observe(float64(n))
}

func (m *Metrics) ObserveLockWait(d time.Duration) {
	if m == nil {
		return
	}
	m.LockWait.Observe(d.Seconds())
}

func (m *Metrics) IncHTTP(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Result traduz um erro no rótulo "result" dos contadores.
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	if k, ok := httperr.KindOf(err); ok {
		return string(k)
	}
	return "error"
}
