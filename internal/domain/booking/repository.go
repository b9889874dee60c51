package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         time.Time
}

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Customer --------
	FindCustomerByPhone(
		ctx context.Context,
		barbershopID uint,
		phone string,
	) (*models.Customer, error)

	GetCustomer(
		ctx context.Context,
		barbershopID uint,
		customerID uint,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (availability) --------

	// ListActiveBookings retorna só PENDING/CONFIRMED do barbeiro no
	// intervalo [start, end]; o filtro por status acontece no banco.
	ListActiveBookings(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Booking (create / race guard) --------

	// HasActiveBookingAt checa existência de agendamento ativo no
	// timestamp exato; excludeID ignora um agendamento (0 = nenhum).
	HasActiveBookingAt(
		ctx context.Context,
		barberID uint,
		at time.Time,
		excludeID uint,
	) (bool, error)

	// CreateBooking grava dentro de transação com recheck de conflito;
	// violação de constraint vira erro de negócio slot_already_booked.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change / listing) --------
	GetBookingForShop(
		ctx context.Context,
		bookingID uint,
		barbershopID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// barberID = 0 lista todos os barbeiros da barbearia
	ListBookingsForPeriod(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
