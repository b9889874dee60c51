package booking

import (
	"sort"
	"time"
)

// Slot é um horário candidato de agendamento. Efêmero: recalculado a
// cada requisição, nunca persistido nem cacheado (cache aqui viraria
// duplo agendamento).
type Slot struct {
	Start time.Time
	End   time.Time
}

// GenerateSlots produz os candidatos do dia para a duração do serviço
// solicitado. A duração do chamador sempre manda no tamanho do slot,
// inclusive no formato enumerado.
func GenerateSlots(day DaySchedule, date time.Time, duration time.Duration) []Slot {
	if duration <= 0 {
		return nil
	}

	switch day.Variant {
	case VariantEnumerated:
		return enumeratedSlots(day.Times, date, duration)
	case VariantInterval:
		return intervalSlots(day, date, duration)
	}

	return nil
}

// Formato A: literais "HH:MM" cadastrados pelo administrador.
// Literal ilegível é dado legado: descartamos e seguimos, sem abortar
// a geração dos demais. A ordem de entrada não é confiável: ordenamos
// sempre após o parse.
func enumeratedSlots(times []string, date time.Time, duration time.Duration) []Slot {
	slots := make([]Slot, 0, len(times))

	for _, literal := range times {
		start, ok := parseTimeOfDay(literal, date)
		if !ok {
			continue
		}
		slots = append(slots, Slot{
			Start: start,
			End:   start.Add(duration),
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

// Formato B: varre [start, end) de duration em duration. Só oferece o
// slot que cabe inteiro no expediente; fim exatamente igual a end é
// válido; nunca há slot parcial no final.
func intervalSlots(day DaySchedule, date time.Time, duration time.Duration) []Slot {
	if !day.Available {
		return nil
	}

	workStart, okStart := parseTimeOfDay(day.Start, date)
	workEnd, okEnd := parseTimeOfDay(day.End, date)
	if !okStart || !okEnd {
		return nil
	}

	var slots []Slot
	for cur := workStart; ; cur = cur.Add(duration) {
		end := cur.Add(duration)
		if end.After(workEnd) {
			break
		}
		slots = append(slots, Slot{Start: cur, End: end})
	}

	return slots
}

func parseTimeOfDay(literal string, date time.Time) (time.Time, bool) {
	t, err := time.Parse("15:04", literal)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}
