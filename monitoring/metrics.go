package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total simulated logins",
		},
	)

	bookingIntents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_intents_total",
			Help: "Booking intents built, by tier",
		},
		[]string{"tier"},
	)

	ticketsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Tickets committed to the store, by tier",
		},
		[]string{"tier"},
	)

	ticketExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_exports_total",
			Help: "Ticket PDF exports, by scope and status",
		},
		[]string{"scope", "status"},
	)

	paymentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payment_duration_seconds",
			Help:    "Duration of mock payment processing",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		},
	)
)

func TrackLogin() {
	loginsTotal.Inc()
}

func TrackBookingIntent(tier string) {
	bookingIntents.WithLabelValues(tier).Inc()
}

func TrackTicketsIssued(tier string, count int) {
	ticketsIssued.WithLabelValues(tier).Add(float64(count))
}

func TrackExport(scope, status string) {
	ticketExports.WithLabelValues(scope, status).Inc()
}

func TrackPaymentDuration(d time.Duration) {
	paymentDuration.Observe(d.Seconds())
}
