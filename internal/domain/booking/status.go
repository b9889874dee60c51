package booking

import "github.com/BruksfildServices01/aparatus-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCanceled  Status = "CANCELED"
	StatusCompleted Status = "COMPLETED"
)

// IsActive indica se o agendamento ainda ocupa horário na agenda.
// CANCELED e COMPLETED nunca bloqueiam um slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusCompleted:
		return Status(raw), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if !current.IsActive() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if !current.IsActive() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o status de todo agendamento recém-criado
func InitialStatus() Status {
	return StatusConfirmed
}
