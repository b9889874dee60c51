package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsExclusionConflict detecta violação de constraint de unicidade ou
// exclusão do Postgres. O índice único parcial de bookings ativos em
// (barber_id, start_time) é a última barreira contra duplo agendamento
// concorrente: quando duas escritas passam pelo recheck ao mesmo
// tempo, uma delas morre aqui e vira slot_already_booked.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
	}
	return false
}
