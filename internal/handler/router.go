package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	custommiddleware "github.com/moghalakrambaig/sparkle-clean-service/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware сайта сервиса уборки.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", h.GetServices)

		r.Post("/bookings", h.CreateBooking)
		r.Get("/bookings/{number}", h.GetBookingByNumber)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)

			r.Group(func(r chi.Router) {
				r.Use(h.session.Middleware)

				r.Get("/bookings", h.ListBookings)
				r.Get("/bookings/export", h.ExportBookings)
				r.Put("/bookings/{id}/status", h.UpdateBookingStatus)
				r.Delete("/bookings/{id}", h.DeleteBooking)

				r.Get("/passwords", h.ListPasswords)
				r.Post("/passwords", h.AddPassword)
				r.Delete("/passwords/{id}", h.DeletePassword)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
