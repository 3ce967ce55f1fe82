package storeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/moghalakrambaig/sparkle-clean-service/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты хранилища по его внешнему контракту.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.GetBookings)
		r.Post("/", h.CreateBooking)
		r.Get("/number/{bookingNumber}", h.GetBookingByNumber)
		r.Put("/{id}/status", h.UpdateBookingStatus)
		r.Delete("/{id}", h.DeleteBooking)
	})

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Get("/getallpasswords", h.GetAllPasswords)
		r.Post("/passwords", h.CreatePassword)
		r.Delete("/passwords/{id}", h.DeletePassword)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
