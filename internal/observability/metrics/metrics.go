package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	createdTotal       prometheus.Counter
	validationFailures *prometheus.CounterVec
	submitSeconds      prometheus.Histogram
	ledgerSize         prometheus.Gauge
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		createdTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spa",
			Subsystem: "booking",
			Name:      "created_total",
			Help:      "Total confirmed bookings",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spa",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Rejected booking submissions by reason",
		}, []string{"reason"}),
		submitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "spa",
			Subsystem: "booking",
			Name:      "submit_duration_seconds",
			Help:      "Latency of booking submissions, including the confirmation delay",
			Buckets:   prometheus.DefBuckets,
		}),
		ledgerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "spa",
			Subsystem: "booking",
			Name:      "ledger_size",
			Help:      "Current number of booking records in the ledger",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.validationFailures, m.submitSeconds, m.ledgerSize)
	return m
}

func (m *BookingMetrics) ObserveCreated() {
	if m == nil {
		return
	}
	m.createdTotal.Inc()
}

func (m *BookingMetrics) ObserveValidationFailure(reason string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(reason).Inc()
}

func (m *BookingMetrics) ObserveSubmitDuration(seconds float64) {
	if m == nil {
		return
	}
	m.submitSeconds.Observe(seconds)
}

func (m *BookingMetrics) SetLedgerSize(n int) {
	if m == nil {
		return
	}
	m.ledgerSize.Set(float64(n))
}
