// Package handler содержит HTTP-обработчики сайта сервиса уборки.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/middleware"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/service"
)

// Bookings определяет контракт менеджера заявок, используемый HTTP-обработчиками.
type Bookings interface {
	Create(ctx context.Context, req model.BookingRequest) (*model.Booking, error)
	GetByNumber(ctx context.Context, number string) (*model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

// Auth определяет контракт шлюза авторизации, используемый HTTP-обработчиками.
type Auth interface {
	Login(ctx context.Context, candidate string) (bool, error)
	Passwords() []model.Password
	AddSecret(ctx context.Context, value string) (*model.Password, error)
	DeleteSecret(ctx context.Context, id int64) error
}

// Handler реализует HTTP-обработчики сайта сервиса уборки.
type Handler struct {
	bookings Bookings
	auth     Auth
	logger   *zap.Logger
	session  *middleware.SessionMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(bookings Bookings, auth Auth, logger *zap.Logger, session *middleware.SessionMiddleware) *Handler {
	return &Handler{
		bookings: bookings,
		auth:     auth,
		logger:   logger,
		session:  session,
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

// GetServices возвращает фиксированный каталог услуг.
func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, http.StatusOK, model.ServiceCatalog)
}

// CreateBooking принимает форму бронирования и создаёт заявку.
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	booking, err := h.bookings.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyField) || errors.Is(err, service.ErrUnknownService) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("create booking error", zap.Error(err))
		http.Error(w, "Failed to create booking. Please check backend connection.", http.StatusBadGateway)
		return
	}

	h.writeData(w, http.StatusCreated, booking)
}

// GetBookingByNumber возвращает заявку для публичной проверки статуса.
func (h *Handler) GetBookingByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	booking, err := h.bookings.GetByNumber(r.Context(), number)
	if err != nil {
		h.logger.Error("get booking error", zap.Error(err), zap.String("number", number))
		http.Error(w, "Failed to load booking. Please check backend connection.", http.StatusBadGateway)
		return
	}

	if booking == nil {
		http.Error(w, "No booking found with number "+number, http.StatusNotFound)
		return
	}

	h.writeData(w, http.StatusOK, booking)
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
}

// Login проверяет секрет администратора и устанавливает cookie сессии.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ok, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		h.logger.Error("login error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	if ok {
		h.session.SetSessionCookie(w)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(loginResponse{Success: ok}); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// Logout безусловно снимает маркер админской сессии.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.ClearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

// ListBookings возвращает все заявки для админской панели, новые первыми.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list bookings error", zap.Error(err))
		http.Error(w, "Failed to load bookings. Please check backend connection.", http.StatusBadGateway)
		return
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}

	h.writeData(w, http.StatusOK, bookings)
}

// UpdateBookingStatus переводит заявку в статус из query-параметра.
func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	status := r.URL.Query().Get("status")
	if !model.IsValidStatus(status) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.bookings.UpdateStatus(r.Context(), id, model.BookingStatus(status)); err != nil {
		h.logger.Error("update booking status error", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "Failed to update booking. Please check backend connection.", http.StatusBadGateway)
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

	if err := h.bookings.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete booking error", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "Failed to delete booking. Please check backend connection.", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ExportBookings выгружает все заявки в xlsx-файл.
func (h *Handler) ExportBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAll(r.Context())
	if err != nil {
		h.logger.Error("export bookings error", zap.Error(err))
		http.Error(w, "Failed to load bookings. Please check backend connection.", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)

	if err := service.WriteBookingsXLSX(w, bookings); err != nil {
		h.logger.Error("write bookings xlsx", zap.Error(err))
	}
}

// ListPasswords возвращает локальную коллекцию секретов администратора.
func (h *Handler) ListPasswords(w http.ResponseWriter, r *http.Request) {
	h.writeData(w, http.StatusOK, h.auth.Passwords())
}

type passwordRequest struct {
	Password string `json:"password"`
}

// AddPassword добавляет новый секрет администратора.
func (h *Handler) AddPassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := h.auth.AddSecret(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPassword) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if errors.Is(err, service.ErrDuplicatePassword) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("add password error", zap.Error(err))
		http.Error(w, "Failed to add password. Please check backend connection.", http.StatusBadGateway)
		return
	}

	h.writeData(w, http.StatusCreated, created)
}

// DeletePassword удаляет секрет администратора по идентификатору.
func (h *Handler) DeletePassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.auth.DeleteSecret(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrLastPassword) {
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
			return
		}
		h.logger.Error("delete password error", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "Failed to delete password. Please check backend connection.", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusOK)
}
