package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

// Mock repository for testing
type mockRepository struct {
	getBarbershopByIDFunc   func(ctx context.Context, id uint) (*models.Barbershop, error)
	getBarbershopBySlugFunc func(ctx context.Context, slug string) (*models.Barbershop, error)
	getBarberFunc           func(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error)
	getServiceFunc          func(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error)
	findCustomerFunc        func(ctx context.Context, barbershopID uint, phone string) (*models.Customer, error)
	getCustomerFunc         func(ctx context.Context, barbershopID, customerID uint) (*models.Customer, error)
	getOrCreateCustomerFunc func(ctx context.Context, barbershopID uint, name, phone, email string) (*models.Customer, error)
	listActiveFunc          func(ctx context.Context, barberID uint, start, end time.Time) ([]models.Booking, error)
	hasActiveAtFunc         func(ctx context.Context, barberID uint, at time.Time, excludeID uint) (bool, error)
	createBookingFunc       func(ctx context.Context, b *models.Booking) error
	getBookingForShopFunc   func(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error)
	updateBookingFunc       func(ctx context.Context, b *models.Booking) error
	listForPeriodFunc       func(ctx context.Context, barbershopID, barberID uint, start, end time.Time) ([]models.Booking, error)
}

func (m *mockRepository) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	if m.getBarbershopByIDFunc != nil {
		return m.getBarbershopByIDFunc(ctx, id)
	}
	return &models.Barbershop{ID: id, Slug: "test-shop", Timezone: "UTC"}, nil
}

func (m *mockRepository) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	if m.getBarbershopBySlugFunc != nil {
		return m.getBarbershopBySlugFunc(ctx, slug)
	}
	return &models.Barbershop{ID: 1, Slug: slug, Timezone: "UTC"}, nil
}

func (m *mockRepository) GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	if m.getBarberFunc != nil {
		return m.getBarberFunc(ctx, barbershopID, barberID)
	}
	return &models.Barber{
		ID:           barberID,
		BarbershopID: barbershopID,
		Name:         "Barbeiro Teste",
		Active:       true,
		Availability: allWeekInterval("09:00", "18:00"),
	}, nil
}

func (m *mockRepository) GetService(ctx context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	if m.getServiceFunc != nil {
		return m.getServiceFunc(ctx, barbershopID, serviceID)
	}
	return &models.Service{
		ID:           serviceID,
		BarbershopID: barbershopID,
		Name:         "Corte",
		DurationMin:  30,
		Price:        50,
		Active:       true,
	}, nil
}

func (m *mockRepository) FindCustomerByPhone(ctx context.Context, barbershopID uint, phone string) (*models.Customer, error) {
	if m.findCustomerFunc != nil {
		return m.findCustomerFunc(ctx, barbershopID, phone)
	}
	return nil, errors.New("not found")
}

func (m *mockRepository) GetCustomer(ctx context.Context, barbershopID, customerID uint) (*models.Customer, error) {
	if m.getCustomerFunc != nil {
		return m.getCustomerFunc(ctx, barbershopID, customerID)
	}
	return &models.Customer{ID: customerID, BarbershopID: barbershopID, Name: "Cliente"}, nil
}

func (m *mockRepository) GetOrCreateCustomer(ctx context.Context, barbershopID uint, name, phone, email string) (*models.Customer, error) {
	if m.getOrCreateCustomerFunc != nil {
		return m.getOrCreateCustomerFunc(ctx, barbershopID, name, phone, email)
	}
	return &models.Customer{ID: 1, BarbershopID: barbershopID, Name: name, Phone: phone, Email: email}, nil
}

func (m *mockRepository) ListActiveBookings(ctx context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	if m.listActiveFunc != nil {
		return m.listActiveFunc(ctx, barberID, start, end)
	}
	return nil, nil
}

func (m *mockRepository) HasActiveBookingAt(ctx context.Context, barberID uint, at time.Time, excludeID uint) (bool, error) {
	if m.hasActiveAtFunc != nil {
		return m.hasActiveAtFunc(ctx, barberID, at, excludeID)
	}
	return false, nil
}

func (m *mockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	if m.createBookingFunc != nil {
		return m.createBookingFunc(ctx, b)
	}
	b.ID = 1
	return nil
}

func (m *mockRepository) GetBookingForShop(ctx context.Context, bookingID, barbershopID uint) (*models.Booking, error) {
	if m.getBookingForShopFunc != nil {
		return m.getBookingForShopFunc(ctx, bookingID, barbershopID)
	}
	return nil, errors.New("not found")
}

func (m *mockRepository) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if m.updateBookingFunc != nil {
		return m.updateBookingFunc(ctx, b)
	}
	return nil
}

func (m *mockRepository) ListBookingsForPeriod(ctx context.Context, barbershopID, barberID uint, start, end time.Time) ([]models.Booking, error) {
	if m.listForPeriodFunc != nil {
		return m.listForPeriodFunc(ctx, barbershopID, barberID, start, end)
	}
	return nil, nil
}

// allWeekInterval monta uma disponibilidade igual para os sete dias,
// para os testes não dependerem do dia da semana da data escolhida
func allWeekInterval(start, end string) models.JSON {
	day := map[string]any{"available": true, "start": start, "end": end}
	weekly := map[string]any{}
	for _, key := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		weekly[key] = day
	}
	raw, _ := json.Marshal(weekly)
	return models.JSON(raw)
}
