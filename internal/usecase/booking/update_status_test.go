package booking

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

func bookingInStatus(status string) *models.Booking {
	start := time.Date(2030, 5, 20, 10, 0, 0, 0, time.UTC)
	return &models.Booking{
		ID:           5,
		BarbershopID: 1,
		BarberID:     1,
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
		Status:       status,
	}
}

func newStatusUC(repo *mockRepository) *UpdateBookingStatus {
	return NewUpdateBookingStatus(repo, nil, nil)
}

func TestUpdateBookingStatus_Cancel(t *testing.T) {
	var saved *models.Booking

	repo := &mockRepository{
		getBookingForShopFunc: func(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error) {
			return bookingInStatus("CONFIRMED"), nil
		},
		updateBookingFunc: func(ctx context.Context, b *models.Booking) error {
			saved = b
			return nil
		},
	}

	uc := newStatusUC(repo)

	b, err := uc.Execute(context.Background(), 1, 10, 5, "CANCELED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != "CANCELED" {
		t.Fatalf("expected CANCELED, got %s", b.Status)
	}
	if b.CanceledAt == nil {
		t.Fatal("expected canceled_at to be set")
	}
	if saved == nil {
		t.Fatal("booking was not persisted")
	}
}

func TestUpdateBookingStatus_Complete(t *testing.T) {
	repo := &mockRepository{
		getBookingForShopFunc: func(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error) {
			return bookingInStatus("CONFIRMED"), nil
		},
	}

	uc := newStatusUC(repo)

	b, err := uc.Execute(context.Background(), 1, 10, 5, "COMPLETED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != "COMPLETED" || b.CompletedAt == nil {
		t.Fatalf("expected completed booking, got %+v", b)
	}
}

func TestUpdateBookingStatus_CancelInactiveFails(t *testing.T) {
	for _, status := range []string{"CANCELED", "COMPLETED"} {
		repo := &mockRepository{
			getBookingForShopFunc: func(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error) {
				return bookingInStatus(status), nil
			},
		}

		uc := newStatusUC(repo)

		_, err := uc.Execute(context.Background(), 1, 10, 5, "CANCELED")
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("status %s: expected invalid_state, got %v", status, err)
		}
	}
}

func TestUpdateBookingStatus_ReactivateFreeSlot(t *testing.T) {
	repo := &mockRepository{
		getBookingForShopFunc: func(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error) {
			canceled := bookingInStatus("CANCELED")
			now := time.Now()
			canceled.CanceledAt = &now
			return canceled, nil
		},
	}

	uc := newStatusUC(repo)

	b, err := uc.Execute(context.Background(), 1, 10, 5, "CONFIRMED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != "CONFIRMED" {
		t.Fatalf("expected CONFIRMED, got %s", b.Status)
	}
	if b.CanceledAt != nil {
		t.Fatal("reactivation should clear canceled_at")
	}
}

func TestUpdateBookingStatus_ReactivateTakenSlot(t *testing.T) {
	repo := &mockRepository{
		getBookingForShopFunc: func(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error) {
			return bookingInStatus("CANCELED"), nil
		},
		hasActiveAtFunc: func(ctx context.Context, barberID uint, at time.Time, excludeID uint) (bool, error) {
			if excludeID != 5 {
				t.Fatalf("recheck must exclude the booking itself, got excludeID=%d", excludeID)
			}
			return true, nil
		},
	}

	uc := newStatusUC(repo)

	_, err := uc.Execute(context.Background(), 1, 10, 5, "CONFIRMED")
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	uc := newStatusUC(&mockRepository{})

	_, err := uc.Execute(context.Background(), 1, 10, 5, "confirmed")
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status for lowercase input, got %v", err)
	}

	_, err = uc.Execute(context.Background(), 1, 10, 5, "DONE")
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	uc := newStatusUC(&mockRepository{})

	_, err := uc.Execute(context.Background(), 1, 10, 999, "CANCELED")
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}
