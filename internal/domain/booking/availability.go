package booking

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
)

// ======================================================
// Disponibilidade semanal do barbeiro
// ======================================================
//
// Duas gerações de configuração convivem no banco:
//
//	Formato A (lista): ["09:00", "10:00", "14:30"]
//	Formato B (intervalo): {"available": true, "start": "09:00", "end": "18:00"}
//
// A forma é decidida UMA vez aqui (NormalizeDay) e vira uma união
// etiquetada; nenhum código downstream reinspeciona o JSON.

type WeeklyAvailability map[string]json.RawMessage

var weekdayKeys = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// WeekdayKey converte time.Weekday para a chave usada no jsonb
func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

type Variant int

const (
	VariantOff Variant = iota
	VariantEnumerated
	VariantInterval
)

// DaySchedule é a forma canônica de um dia de trabalho
type DaySchedule struct {
	Variant Variant

	// VariantEnumerated
	Times []string

	// VariantInterval
	Available bool
	Start     string
	End       string
}

type intervalConfig struct {
	Available bool   `json:"available"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// ErrInvalidScheduleFormat: forma desconhecida de configuração.
// É erro de verdade, nunca tratado como "dia sem expediente":
// adivinhar intenção aqui esconderia dados corrompidos.
func ErrInvalidScheduleFormat() error {
	return httperr.ErrBusiness("invalid_schedule_format")
}

// NormalizeDay decide o formato do dia pela estrutura do valor.
// Chave ausente (ou null) significa dia sem slots; isso não é erro.
func NormalizeDay(raw json.RawMessage) (DaySchedule, error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return DaySchedule{Variant: VariantOff}, nil
	}

	switch trimmed[0] {
	case '[':
		var times []string
		if err := json.Unmarshal(trimmed, &times); err != nil {
			return DaySchedule{}, ErrInvalidScheduleFormat()
		}
		return DaySchedule{
			Variant: VariantEnumerated,
			Times:   times,
		}, nil

	case '{':
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &keys); err != nil {
			return DaySchedule{}, ErrInvalidScheduleFormat()
		}

		_, hasStart := keys["start"]
		_, hasEnd := keys["end"]
		if !hasStart || !hasEnd {
			return DaySchedule{}, ErrInvalidScheduleFormat()
		}

		var cfg intervalConfig
		if err := json.Unmarshal(trimmed, &cfg); err != nil {
			return DaySchedule{}, ErrInvalidScheduleFormat()
		}

		return DaySchedule{
			Variant:   VariantInterval,
			Available: cfg.Available,
			Start:     cfg.Start,
			End:       cfg.End,
		}, nil
	}

	return DaySchedule{}, ErrInvalidScheduleFormat()
}

// NormalizeWeekday resolve o dia da data dentro da disponibilidade semanal
func (w WeeklyAvailability) NormalizeWeekday(date time.Time) (DaySchedule, error) {
	raw, ok := w[WeekdayKey(date.Weekday())]
	if !ok {
		return DaySchedule{Variant: VariantOff}, nil
	}
	return NormalizeDay(raw)
}

// DefaultWeeklyAvailability monta a disponibilidade inicial de um
// barbeiro recém-criado: segunda a sexta 09:00–18:00, fim de semana
// fechado. Retorna sempre um valor novo: quem cria o barbeiro recebe
// a configuração como argumento explícito, não há default global
// compartilhado.
func DefaultWeeklyAvailability() WeeklyAvailability {
	workday, _ := json.Marshal(intervalConfig{Available: true, Start: "09:00", End: "18:00"})
	closed, _ := json.Marshal(intervalConfig{Available: false, Start: "09:00", End: "18:00"})

	return WeeklyAvailability{
		"monday":    workday,
		"tuesday":   workday,
		"wednesday": workday,
		"thursday":  workday,
		"friday":    workday,
		"saturday":  closed,
		"sunday":    closed,
	}
}
