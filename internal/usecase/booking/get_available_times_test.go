package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

func availabilityInput(date time.Time) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     1,
		ServiceID:    1,
		Date:         date,
	}
}

func TestGetAvailableTimes_FullPipeline(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &mockRepository{
		getBarberFunc: func(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
			return &models.Barber{
				ID:           barberID,
				Availability: allWeekInterval("09:00", "11:00"),
			}, nil
		},
		getServiceFunc: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
			return &models.Service{ID: serviceID, DurationMin: 60}, nil
		},
		listActiveFunc: func(ctx context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
			return []models.Booking{
				{
					StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
					Status:    "CONFIRMED",
				},
			}, nil
		},
	}

	uc := NewGetAvailableTimes(repo)

	times, err := uc.Execute(context.Background(), availabilityInput(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(times) != 1 || times[0] != "09:00" {
		t.Fatalf("expected [09:00], got %v", times)
	}
}

func TestGetAvailableTimes_CanceledBookingDoesNotBlock(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &mockRepository{
		getBarberFunc: func(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
			return &models.Barber{
				ID:           barberID,
				Availability: allWeekInterval("09:00", "10:00"),
			}, nil
		},
		// mesmo que um CANCELED vaze do banco, o filtro de conflito
		// ignora status inativo
		listActiveFunc: func(ctx context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
			return []models.Booking{
				{
					StartTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
					Status:    "CANCELED",
				},
			}, nil
		},
	}

	uc := NewGetAvailableTimes(repo)

	times, err := uc.Execute(context.Background(), availabilityInput(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(times) != 2 {
		t.Fatalf("expected [09:00 09:30], got %v", times)
	}
}

func TestGetAvailableTimes_Idempotent(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &mockRepository{}
	uc := NewGetAvailableTimes(repo)

	first, err := uc.Execute(context.Background(), availabilityInput(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.Execute(context.Background(), availabilityInput(date))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("recomputation changed the result: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("recomputation changed the result: %v vs %v", first, second)
		}
	}
}

func TestGetAvailableTimes_AvailabilityNotConfigured(t *testing.T) {
	repo := &mockRepository{
		getBarberFunc: func(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
			return &models.Barber{ID: barberID}, nil
		},
	}

	uc := NewGetAvailableTimes(repo)

	_, err := uc.Execute(context.Background(), availabilityInput(time.Now()))
	if !httperr.IsBusiness(err, "availability_not_configured") {
		t.Fatalf("expected availability_not_configured, got %v", err)
	}
}

func TestGetAvailableTimes_InvalidScheduleFormat(t *testing.T) {
	repo := &mockRepository{
		getBarberFunc: func(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
			return &models.Barber{
				ID:           barberID,
				Availability: models.JSON(`[1, 2, 3]`),
			}, nil
		},
	}

	uc := NewGetAvailableTimes(repo)

	_, err := uc.Execute(context.Background(), availabilityInput(time.Now()))
	if !httperr.IsBusiness(err, "invalid_schedule_format") {
		t.Fatalf("expected invalid_schedule_format, got %v", err)
	}
}

func TestGetAvailableTimes_ServiceAndBarberNotFound(t *testing.T) {
	repo := &mockRepository{
		getServiceFunc: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewGetAvailableTimes(repo)

	_, err := uc.Execute(context.Background(), availabilityInput(time.Now()))
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}

	repo = &mockRepository{
		getBarberFunc: func(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
			return nil, errors.New("record not found")
		},
	}

	uc = NewGetAvailableTimes(repo)

	_, err = uc.Execute(context.Background(), availabilityInput(time.Now()))
	if !httperr.IsBusiness(err, "barber_not_found") {
		t.Fatalf("expected barber_not_found, got %v", err)
	}
}

func TestGetAvailableTimes_InvalidDuration(t *testing.T) {
	repo := &mockRepository{
		getServiceFunc: func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
			return &models.Service{ID: serviceID, DurationMin: 0}, nil
		},
	}

	uc := NewGetAvailableTimes(repo)

	_, err := uc.Execute(context.Background(), availabilityInput(time.Now()))
	if !httperr.IsBusiness(err, "invalid_duration") {
		t.Fatalf("expected invalid_duration, got %v", err)
	}
}
