// Package storeapi содержит HTTP-обработчики хранилища заявок и паролей.
// Хранилище реализует контракт как есть и не навязывает бизнес-правил:
// статусы и инвариант непустоты паролей контролирует клиентская сторона.
package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/repository"
)

// Repository описывает контракт доступа к данным, используемый HTTP-обработчиками.
type Repository interface {
	AllBookings(ctx context.Context) ([]model.Booking, error)
	BookingByNumber(ctx context.Context, number string) (*model.Booking, error)
	CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error
	DeleteBooking(ctx context.Context, id int64) error
	AllPasswords(ctx context.Context) ([]model.Password, error)
	CheckPassword(ctx context.Context, candidate string) (bool, error)
	CreatePassword(ctx context.Context, password string) (*model.Password, error)
	DeletePassword(ctx context.Context, id int64) error
}

// Handler реализует HTTP-обработчики хранилища.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов хранилища.
func NewHandler(repo Repository, logger *zap.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

type dataResponse struct {
	Data any `json:"data"`
}

func (h *Handler) writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dataResponse{Data: data}); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// GetBookings возвращает все заявки.
func (h *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.repo.AllBookings(r.Context())
	if err != nil {
		h.logger.Error("get bookings error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}

	h.writeData(w, http.StatusOK, bookings)
}

// GetBookingByNumber возвращает заявку по номеру; отсутствие — 404.
func (h *Handler) GetBookingByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "bookingNumber")

	booking, err := h.repo.BookingByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("get booking error", zap.Error(err), zap.String("number", number))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeData(w, http.StatusOK, booking)
}

// CreateBooking создаёт заявку; id, номер и статус Pending назначаются здесь.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	booking, err := h.repo.CreateBooking(r.Context(), req)
	if err != nil {
		h.logger.Error("create booking error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeData(w, http.StatusOK, booking)
}

// UpdateBookingStatus записывает статус из query-параметра как есть.
func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateBookingStatus(r.Context(), id, model.BookingStatus(status)); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("update booking error", zap.Error(err), zap.Int64("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteBooking удаляет заявку по идентификатору.
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteBooking(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("delete booking error", zap.Error(err), zap.Int64("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login проверяет секрет по базе и возвращает {success}.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ok, err := h.repo.CheckPassword(r.Context(), req.Password)
	if err != nil {
		h.logger.Error("login error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]bool{"success": ok}); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// GetAllPasswords возвращает полный список секретов.
func (h *Handler) GetAllPasswords(w http.ResponseWriter, r *http.Request) {
	passwords, err := h.repo.AllPasswords(r.Context())
	if err != nil {
		h.logger.Error("get passwords error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if passwords == nil {
		passwords = []model.Password{}
	}

	h.writeData(w, http.StatusOK, passwords)
}

// CreatePassword сохраняет новый секрет.
func (h *Handler) CreatePassword(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.repo.CreatePassword(r.Context(), req.Password)
	if err != nil {
		h.logger.Error("create password error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeData(w, http.StatusOK, created)
}

// DeletePassword удаляет секрет безусловно.
func (h *Handler) DeletePassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.repo.DeletePassword(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrPasswordNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		h.logger.Error("delete password error", zap.Error(err), zap.Int64("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
