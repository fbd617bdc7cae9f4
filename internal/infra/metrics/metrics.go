package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parkspot_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "parkspot_bookings_created_total",
			Help: "Bookings created",
		},
	)

	bookingStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_booking_status_changes_total",
			Help: "Booking status transitions by target status",
		},
		[]string{"status"},
	)

	paymentConfirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_payment_confirmations_total",
			Help: "Payment confirmations by result",
		},
		[]string{"result"},
	)

	outboxPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parkspot_outbox_published_total",
			Help: "Outbox jobs relayed to the broker by result",
		},
		[]string{"kind", "result"},
	)
)

func ObserveHTTPRequest(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingStatus(status string) {
	bookingStatusChanges.WithLabelValues(status).Inc()
}

func IncPaymentConfirmation(result string) {
	paymentConfirmations.WithLabelValues(result).Inc()
}

func IncOutboxPublished(kind, result string) {
	outboxPublished.WithLabelValues(kind, result).Inc()
}
