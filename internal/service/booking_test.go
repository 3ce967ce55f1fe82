package service

import (
	"context"
	"errors"
	"testing"

	"github.com/moghalakrambaig/sparkle-clean-service/internal/model"
)

type stubBookingStore struct {
	bookings    []model.Booking
	bookingsErr error

	byNumber    *model.Booking
	byNumberErr error

	created   *model.Booking
	createErr error

	updateErr error
	deleteErr error

	lastStatus model.BookingStatus
	deletedID  int64
}

func (s *stubBookingStore) AllBookings(ctx context.Context) ([]model.Booking, error) {
	return s.bookings, s.bookingsErr
}

func (s *stubBookingStore) BookingByNumber(ctx context.Context, number string) (*model.Booking, error) {
	return s.byNumber, s.byNumberErr
}

func (s *stubBookingStore) CreateBooking(ctx context.Context, booking model.BookingRequest) (*model.Booking, error) {
	return s.created, s.createErr
}

func (s *stubBookingStore) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	s.lastStatus = status
	return s.updateErr
}

func (s *stubBookingStore) DeleteBooking(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

func validRequest() model.BookingRequest {
	return model.BookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-1234",
		Address: "1 Main St",
		Service: "kitchen-cleaning",
		Date:    "2025-06-01",
		Time:    "10:00",
	}
}

func TestCreate_Success(t *testing.T) {
	store := &stubBookingStore{
		created: &model.Booking{
			ID:            1,
			BookingNumber: "SC-1A2B3C",
			Name:          "Jane Doe",
			Status:        model.BookingStatusPending,
		},
	}
	svc := NewBookingService(store)

	booking, err := svc.Create(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if booking.Status != model.BookingStatusPending {
		t.Fatalf("status = %s, want Pending", booking.Status)
	}
	if booking.BookingNumber == "" {
		t.Fatalf("booking number must not be empty")
	}
}

func TestCreate_EmptyFieldRejected(t *testing.T) {
	svc := NewBookingService(&stubBookingStore{})

	req := validRequest()
	req.Phone = ""

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
}

func TestCreate_UnknownServiceRejected(t *testing.T) {
	svc := NewBookingService(&stubBookingStore{})

	req := validRequest()
	req.Service = "pool-cleaning"

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	store := &stubBookingStore{createErr: errors.New("connection refused")}
	svc := NewBookingService(store)

	booking, err := svc.Create(context.Background(), validRequest())
	if err == nil {
		t.Fatalf("expected error on store failure")
	}
	if booking != nil {
		t.Fatalf("expected nil booking on failure, got %+v", booking)
	}
}

func TestGetByNumber_NotFoundIsNotError(t *testing.T) {
	svc := NewBookingService(&stubBookingStore{})

	booking, err := svc.GetByNumber(context.Background(), "SC-MISSING")
	if err != nil {
		t.Fatalf("not-found must not be an error, got %v", err)
	}
	if booking != nil {
		t.Fatalf("expected nil booking, got %+v", booking)
	}
}

func TestListAll_SortsByIDDescending(t *testing.T) {
	store := &stubBookingStore{
		bookings: []model.Booking{
			{ID: 2, BookingNumber: "SC-2"},
			{ID: 5, BookingNumber: "SC-5"},
			{ID: 1, BookingNumber: "SC-1"},
		},
	}
	svc := NewBookingService(store)

	bookings, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}

	if len(bookings) != 3 {
		t.Fatalf("len = %d, want 3", len(bookings))
	}
	for i, wantID := range []int64{5, 2, 1} {
		if bookings[i].ID != wantID {
			t.Fatalf("bookings[%d].ID = %d, want %d", i, bookings[i].ID, wantID)
		}
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	store := &stubBookingStore{}
	svc := NewBookingService(store)

	err := svc.UpdateStatus(context.Background(), 1, model.BookingStatus("Cancelled"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if store.lastStatus != "" {
		t.Fatalf("store must not be called for invalid status")
	}
}

func TestUpdateStatus_PassesStatusThrough(t *testing.T) {
	store := &stubBookingStore{}
	svc := NewBookingService(store)

	if err := svc.UpdateStatus(context.Background(), 1, model.BookingStatusApproved); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if store.lastStatus != model.BookingStatusApproved {
		t.Fatalf("store status = %s, want Approved", store.lastStatus)
	}
}

func TestDelete_PropagatesFailure(t *testing.T) {
	store := &stubBookingStore{deleteErr: errors.New("boom")}
	svc := NewBookingService(store)

	if err := svc.Delete(context.Background(), 4); err == nil {
		t.Fatalf("expected error on store failure")
	}
	if store.deletedID != 4 {
		t.Fatalf("deletedID = %d, want 4", store.deletedID)
	}
}
