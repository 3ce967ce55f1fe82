// Package service реализует бизнес-логику сайта сервиса уборки:
// жизненный цикл заявок и шлюз авторизации администратора.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/metrics"
	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
)

// ErrEmptyField возвращается, если обязательное поле формы бронирования пустое.
var (
	ErrEmptyField = errors.New("required field is empty")
	// ErrUnknownService возвращается, если идентификатор услуги не входит в каталог.
	ErrUnknownService = errors.New("unknown service id")
	// ErrInvalidStatus возвращается при попытке установить недопустимый статус.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// BookingStore описывает контракт удалённого хранилища, используемый менеджером заявок.
type BookingStore interface {
	AllBookings(ctx context.Context) ([]model.Booking, error)
	BookingByNumber(ctx context.Context, number string) (*model.Booking, error)
	CreateBooking(ctx context.Context, booking model.BookingRequest) (*model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error
	DeleteBooking(ctx context.Context, id int64) error
}

// BookingService управляет жизненным циклом заявок на уборку.
// Каждая операция — один запрос к удалённому хранилищу без повторов;
// источником истины всегда остаётся хранилище.
type BookingService struct {
	store BookingStore
}

// NewBookingService создаёт менеджер заявок поверх указанного хранилища.
func NewBookingService(store BookingStore) *BookingService {
	return &BookingService{store: store}
}

// Create проверяет заполненность полей формы и создаёт заявку в хранилище.
// Возвращённая заявка содержит назначенные хранилищем id, номер и статус Pending.
func (s *BookingService) Create(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	for _, field := range []string{req.Name, req.Email, req.Phone, req.Address, req.Service, req.Date, req.Time} {
		if field == "" {
			return nil, ErrEmptyField
		}
	}

	if !model.IsValidService(req.Service) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, req.Service)
	}

	booking, err := s.store.CreateBooking(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated()
	return booking, nil
}

// GetByNumber возвращает заявку по её номеру.
// Отсутствие заявки — штатный исход (nil, nil), а не ошибка.
func (s *BookingService) GetByNumber(ctx context.Context, number string) (*model.Booking, error) {
	booking, err := s.store.BookingByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get booking by number: %w", err)
	}
	return booking, nil
}

// ListAll возвращает все заявки, отсортированные по id по убыванию (новые первыми).
// Сортировка выполняется на этой стороне: хранилище порядок не гарантирует.
func (s *BookingService) ListAll(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.store.AllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID > bookings[j].ID
	})

	return bookings, nil
}

// UpdateStatus переводит заявку в указанный статус.
// Легальность перехода здесь не проверяется: админский интерфейс предлагает
// только Approved и Rejected, а хранилище принимает присланное значение как есть.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	if !model.IsValidStatus(string(status)) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.store.UpdateBookingStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	metrics.IncBookingDecision(string(status))
	return nil
}

// Delete удаляет заявку по идентификатору.
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	metrics.IncBookingDeleted()
	return nil
}
