package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/aparatus-booking/internal/audit"
	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
	"github.com/BruksfildServices01/aparatus-booking/internal/timezone"
	"github.com/BruksfildServices01/aparatus-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmBookingInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	// CustomerID preenchido = fluxo admin com cliente existente;
	// zero = resolve/cria pelo telefone normalizado
	CustomerID    uint
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// PageCache invalida as páginas públicas da barbearia após mutações
// (colaborador externo, implementado sobre redis em internal/cache)
type PageCache interface {
	InvalidateShop(ctx context.Context, slug string) error
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	repo  domain.Repository
	avail *GetAvailableTimes
	pages PageCache
	audit *audit.Dispatcher
	log   zerolog.Logger
}

func NewConfirmBooking(
	repo domain.Repository,
	pages PageCache,
	auditDispatcher *audit.Dispatcher,
	log zerolog.Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		avail: NewGetAvailableTimes(repo),
		pages: pages,
		audit: auditDispatcher,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Barbearia
	// --------------------------------------------------
	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	// --------------------------------------------------
	// 2. Data / hora no timezone da barbearia
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3. Antecedência mínima
	// --------------------------------------------------
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance < 0 {
		minAdvance = 0
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// 4. Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin < 1 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 5. Revalidação do slot (corrida entre listar e confirmar)
	// --------------------------------------------------
	times, err := uc.avail.Execute(ctx, domain.AvailabilityInput{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ServiceID:    in.ServiceID,
		Date:         start,
	})
	if err != nil {
		return nil, err
	}

	if !containsTime(times, start.Format("15:04")) {
		return nil, httperr.ErrBusiness("slot_no_longer_available")
	}

	// --------------------------------------------------
	// 6. Checagem direta no timestamp exato (cinto e suspensório
	//    contra submissões concorrentes entre o passo 5 e o commit)
	// --------------------------------------------------
	taken, err := uc.repo.HasActiveBookingAt(ctx, in.BarberID, start, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_already_booked")
	}

	// --------------------------------------------------
	// 7. Cliente (existente ou get-or-create por telefone)
	// --------------------------------------------------
	customer, err := uc.resolveCustomer(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Criação (o repositório faz recheck transacional e traduz
	//    violação de constraint em slot_already_booked)
	// --------------------------------------------------
	b := &models.Booking{
		PublicID:     uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ServiceID:    service.ID,
		CustomerID:   customer.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9. Invalidação das páginas públicas + auditoria
	// --------------------------------------------------
	if uc.pages != nil {
		if err := uc.pages.InvalidateShop(ctx, shop.Slug); err != nil {
			uc.log.Warn().Err(err).Str("slug", shop.Slug).Msg("falha ao invalidar cache público")
		}
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: in.BarbershopID,
			Action:       "booking_created",
			Entity:       "booking",
			EntityID:     &b.ID,
		})
	}

	return b, nil
}

func (uc *ConfirmBooking) resolveCustomer(
	ctx context.Context,
	in ConfirmBookingInput,
) (*models.Customer, error) {

	if in.CustomerID != 0 {
		customer, err := uc.repo.GetCustomer(ctx, in.BarbershopID, in.CustomerID)
		if err != nil {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		return customer, nil
	}

	if in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, httperr.ErrBusiness("customer_required")
	}

	phone := validators.NormalizePhone(in.CustomerPhone)
	if phone == "" {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	return uc.repo.GetOrCreateCustomer(
		ctx,
		in.BarbershopID,
		in.CustomerName,
		phone,
		in.CustomerEmail,
	)
}

func containsTime(times []string, hm string) bool {
	for _, t := range times {
		if t == hm {
			return true
		}
	}
	return false
}
