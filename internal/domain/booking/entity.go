package booking

import (
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCanceled)
	b.CanceledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// BusyFrom projeta agendamentos persistidos para o filtro de conflito
func BusyFrom(bookings []models.Booking) []BusySlot {
	busy := make([]BusySlot, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, BusySlot{
			Start:  b.StartTime,
			End:    b.EndTime,
			Status: Status(b.Status),
		})
	}
	return busy
}
