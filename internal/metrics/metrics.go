// Package metrics содержит Prometheus-метрики сервиса бронирования уборки.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sparkle_clean",
			Name:      "booking_created_total",
			Help:      "Count of bookings created through the intake form.",
		},
	)

	bookingDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkle_clean",
			Name:      "booking_decision_total",
			Help:      "Count of admin decisions over bookings.",
		},
		[]string{"status"},
	)

	bookingDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sparkle_clean",
			Name:      "booking_deleted_total",
			Help:      "Count of bookings deleted by admins.",
		},
	)

	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sparkle_clean",
			Name:      "login_attempt_total",
			Help:      "Count of admin login attempts by result.",
		},
		[]string{"result"},
	)
)

// Register регистрирует метрики (идемпотентно).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingDecision, bookingDeleted, loginAttempts)
	})
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingDecision(status string) {
	bookingDecision.WithLabelValues(status).Inc()
}

func IncBookingDeleted() {
	bookingDeleted.Inc()
}

func IncLoginAttempt(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}
