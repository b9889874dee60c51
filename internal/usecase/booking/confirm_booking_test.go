package booking

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

func newConfirmUC(repo *mockRepository) *ConfirmBooking {
	return NewConfirmBooking(repo, nil, nil, zerolog.Nop())
}

func confirmInput() ConfirmBookingInput {
	return ConfirmBookingInput{
		BarbershopID:  1,
		BarberID:      1,
		ServiceID:     1,
		CustomerName:  "João",
		CustomerPhone: "(11) 98765-4321",
		Date:          "2030-05-20",
		Time:          "10:00",
	}
}

func TestConfirmBooking_HappyPath(t *testing.T) {
	var created *models.Booking
	var phoneSeen string

	repo := &mockRepository{
		getOrCreateCustomerFunc: func(ctx context.Context, barbershopID uint, name, phone, email string) (*models.Customer, error) {
			phoneSeen = phone
			return &models.Customer{ID: 7, BarbershopID: barbershopID, Name: name, Phone: phone}, nil
		},
		createBookingFunc: func(ctx context.Context, b *models.Booking) error {
			b.ID = 42
			created = b
			return nil
		},
	}

	uc := newConfirmUC(repo)

	b, err := uc.Execute(context.Background(), confirmInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("booking was not persisted")
	}
	if b.Status != "CONFIRMED" {
		t.Fatalf("expected CONFIRMED, got %s", b.Status)
	}
	if b.PublicID == "" {
		t.Fatal("expected public_id to be set")
	}
	if b.CustomerID != 7 {
		t.Fatalf("expected customer 7, got %d", b.CustomerID)
	}

	// telefone chega ao repositório já normalizado (só dígitos)
	if phoneSeen != "11987654321" {
		t.Fatalf("expected normalized phone, got %q", phoneSeen)
	}

	// fim = início + duração do serviço (30min do mock)
	if got := b.EndTime.Sub(b.StartTime); got != 30*time.Minute {
		t.Fatalf("expected 30m duration, got %v", got)
	}
}

func TestConfirmBooking_TooSoon(t *testing.T) {
	repo := &mockRepository{
		getBarbershopByIDFunc: func(ctx context.Context, id uint) (*models.Barbershop, error) {
			return &models.Barbershop{ID: id, Slug: "test-shop", Timezone: "UTC", MinAdvanceMinutes: 120}, nil
		},
	}

	uc := newConfirmUC(repo)

	in := confirmInput()
	in.Date = "2000-01-01" // passado: sempre abaixo da antecedência

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "too_soon") {
		t.Fatalf("expected too_soon, got %v", err)
	}
}

func TestConfirmBooking_InvalidDateOrTime(t *testing.T) {
	uc := newConfirmUC(&mockRepository{})

	in := confirmInput()
	in.Time = "10h30"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}

func TestConfirmBooking_SlotNoLongerAvailable(t *testing.T) {
	uc := newConfirmUC(&mockRepository{})

	// 10:17 nunca faz parte da grade de 30 em 30 a partir de 09:00
	in := confirmInput()
	in.Time = "10:17"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_no_longer_available") {
		t.Fatalf("expected slot_no_longer_available, got %v", err)
	}
}

func TestConfirmBooking_SlotTakenBetweenCheckAndCommit(t *testing.T) {
	// a listagem ainda mostra o horário livre, mas a checagem pontual
	// já enxerga a submissão concorrente
	repo := &mockRepository{
		hasActiveAtFunc: func(ctx context.Context, barberID uint, at time.Time, excludeID uint) (bool, error) {
			return true, nil
		},
	}

	uc := newConfirmUC(repo)

	_, err := uc.Execute(context.Background(), confirmInput())
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
}

func TestConfirmBooking_ConstraintViolationSurfacesAsConflict(t *testing.T) {
	repo := &mockRepository{
		createBookingFunc: func(ctx context.Context, b *models.Booking) error {
			// o repositório real traduz 23505/23P01 para este código
			return httperr.ErrBusiness("slot_already_booked")
		},
	}

	uc := newConfirmUC(repo)

	_, err := uc.Execute(context.Background(), confirmInput())
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
}

func TestConfirmBooking_CustomerRequired(t *testing.T) {
	uc := newConfirmUC(&mockRepository{})

	in := confirmInput()
	in.CustomerName = ""
	in.CustomerPhone = ""

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "customer_required") {
		t.Fatalf("expected customer_required, got %v", err)
	}
}

func TestConfirmBooking_InvalidPhone(t *testing.T) {
	uc := newConfirmUC(&mockRepository{})

	in := confirmInput()
	in.CustomerPhone = "sem numero"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_phone") {
		t.Fatalf("expected invalid_phone, got %v", err)
	}
}

func TestConfirmBooking_ExistingCustomerByID(t *testing.T) {
	var created *models.Booking

	repo := &mockRepository{
		createBookingFunc: func(ctx context.Context, b *models.Booking) error {
			created = b
			return nil
		},
	}

	uc := newConfirmUC(repo)

	in := confirmInput()
	in.CustomerID = 99
	in.CustomerName = ""
	in.CustomerPhone = ""

	_, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CustomerID != 99 {
		t.Fatalf("expected customer 99, got %d", created.CustomerID)
	}
}
