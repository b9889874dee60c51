package booking

import "time"

// BusySlot é a projeção de um agendamento existente usada pelo filtro
// de conflito: início, fim (início + duração do serviço agendado) e
// status.
type BusySlot struct {
	Start  time.Time
	End    time.Time
	Status Status
}

// FilterConflicts remove os candidatos que colidem com agendamentos
// ativos. O custo O(candidatos × existentes) é aceitável: os dois
// lados são limitados por um único dia de agenda.
func FilterConflicts(slots []Slot, busy []BusySlot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if hasConflict(s, busy) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasConflict(s Slot, busy []BusySlot) bool {
	for _, b := range busy {
		// CANCELED / COMPLETED nunca ocupam horário
		if !b.Status.IsActive() {
			continue
		}

		// início idêntico: o conflito mais comum, checado à parte para
		// não escapar por arredondamento de timezone
		if s.Start.Equal(b.Start) {
			return true
		}

		// sobreposição de intervalos semiabertos [start, end)
		if s.Start.Before(b.End) && s.End.After(b.Start) {
			return true
		}
	}
	return false
}

// FormatTimes converte os slots finais para literais "HH:MM", na mesma
// ordem. É a resposta pública de disponibilidade.
func FormatTimes(slots []Slot) []string {
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Start.Format("15:04"))
	}
	return times
}
