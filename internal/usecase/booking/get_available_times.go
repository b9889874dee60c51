package booking

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
)

// GetAvailableTimes é o pipeline completo de disponibilidade:
// normalização da configuração do dia → geração de candidatos →
// filtro de conflito. Sempre recalculado do zero; nada é cacheado
// entre chamadas.
type GetAvailableTimes struct {
	repo domain.Repository
}

func NewGetAvailableTimes(repo domain.Repository) *GetAvailableTimes {
	return &GetAvailableTimes{repo: repo}
}

func (uc *GetAvailableTimes) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if service.DurationMin < 1 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// barbeiro sem disponibilidade cadastrada é erro explícito,
	// não lista vazia: o admin precisa saber que falta configurar
	if len(barber.Availability) == 0 {
		return nil, httperr.ErrBusiness("availability_not_configured")
	}

	var weekly domain.WeeklyAvailability
	if err := json.Unmarshal([]byte(barber.Availability), &weekly); err != nil {
		return nil, domain.ErrInvalidScheduleFormat()
	}

	day, err := weekly.NormalizeWeekday(in.Date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	slots := domain.GenerateSlots(day, in.Date, duration)
	if len(slots) == 0 {
		return []string{}, nil
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListActiveBookings(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	free := domain.FilterConflicts(slots, domain.BusyFrom(existing))

	return domain.FormatTimes(free), nil
}
