package booking

import (
	"context"

	"github.com/BruksfildServices01/aparatus-booking/internal/audit"
	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
	"github.com/BruksfildServices01/aparatus-booking/internal/timezone"
)

// UpdateBookingStatus transiciona o status pelo painel admin.
// Agendamentos nunca são apagados; o histórico fica no banco e só o
// status muda.
type UpdateBookingStatus struct {
	repo  domain.Repository
	pages PageCache
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	pages PageCache,
	auditDispatcher *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		pages: pages,
		audit: auditDispatcher,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	barbershopID uint,
	actorID uint,
	bookingID uint,
	rawStatus string,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	b, err := uc.repo.GetBookingForShop(ctx, bookingID, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	current := domain.Status(b.Status)

	switch next {
	case domain.StatusCanceled:
		if err := domain.Cancel(b, now); err != nil {
			return nil, err
		}

	case domain.StatusCompleted:
		if err := domain.Complete(b, now); err != nil {
			return nil, err
		}

	case domain.StatusPending, domain.StatusConfirmed:
		// reativação de um agendamento cancelado volta a ocupar o
		// horário, então só pode acontecer se o slot continua livre
		if !current.IsActive() {
			taken, err := uc.repo.HasActiveBookingAt(ctx, b.BarberID, b.StartTime, b.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, httperr.ErrBusiness("slot_already_booked")
			}
		}
		b.Status = string(next)
		b.CanceledAt = nil
		b.CompletedAt = nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.pages != nil {
		_ = uc.pages.InvalidateShop(ctx, shop.Slug)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &actorID,
			Action:       "booking_status_updated",
			Entity:       "booking",
			EntityID:     &b.ID,
			Metadata: map[string]any{
				"from": string(current),
				"to":   string(next),
			},
		})
	}

	return b, nil
}
