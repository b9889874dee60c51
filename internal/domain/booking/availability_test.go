package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
)

func TestNormalizeDay_EnumeratedList(t *testing.T) {
	day, err := NormalizeDay(json.RawMessage(`["09:00", "10:00", "14:30"]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.Variant != VariantEnumerated {
		t.Fatalf("expected VariantEnumerated, got %v", day.Variant)
	}
	if len(day.Times) != 3 || day.Times[0] != "09:00" {
		t.Fatalf("unexpected times: %v", day.Times)
	}
}

func TestNormalizeDay_Interval(t *testing.T) {
	day, err := NormalizeDay(json.RawMessage(`{"available": true, "start": "09:00", "end": "18:00"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.Variant != VariantInterval {
		t.Fatalf("expected VariantInterval, got %v", day.Variant)
	}
	if !day.Available || day.Start != "09:00" || day.End != "18:00" {
		t.Fatalf("unexpected schedule: %+v", day)
	}
}

func TestNormalizeDay_IntervalUnavailable(t *testing.T) {
	day, err := NormalizeDay(json.RawMessage(`{"available": false, "start": "09:00", "end": "18:00"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if day.Variant != VariantInterval || day.Available {
		t.Fatalf("expected unavailable interval, got %+v", day)
	}
}

func TestNormalizeDay_MissingOrNullIsOff(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`), json.RawMessage(`  `)} {
		day, err := NormalizeDay(raw)
		if err != nil {
			t.Fatalf("raw %q: unexpected error: %v", raw, err)
		}
		if day.Variant != VariantOff {
			t.Fatalf("raw %q: expected VariantOff, got %v", raw, day.Variant)
		}
	}
}

func TestNormalizeDay_InvalidShapes(t *testing.T) {
	cases := []string{
		`"09:00"`,                  // literal solto
		`42`,                       // número
		`true`,                     // booleano
		`{"available": true}`,      // objeto sem start/end
		`{"start": "09:00"}`,       // objeto sem end
		`[1, 2, 3]`,                // lista de não-strings
		`{"start": 1, "end": "x"`,  // JSON quebrado
	}

	for _, raw := range cases {
		_, err := NormalizeDay(json.RawMessage(raw))
		if !httperr.IsBusiness(err, "invalid_schedule_format") {
			t.Fatalf("raw %s: expected invalid_schedule_format, got %v", raw, err)
		}
	}
}

func TestNormalizeWeekday_MissingDayIsOff(t *testing.T) {
	weekly := WeeklyAvailability{
		"monday": json.RawMessage(`["09:00"]`),
	}

	// 2026-08-25 é terça-feira
	tuesday := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	day, err := weekly.NormalizeWeekday(tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Variant != VariantOff {
		t.Fatalf("expected VariantOff for unconfigured day, got %v", day.Variant)
	}
}

func TestNormalizeWeekday_ResolvesCorrectKey(t *testing.T) {
	weekly := WeeklyAvailability{
		"monday": json.RawMessage(`["08:00"]`),
	}

	// 2026-08-24 é segunda-feira
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	day, err := weekly.NormalizeWeekday(monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Variant != VariantEnumerated || len(day.Times) != 1 {
		t.Fatalf("unexpected schedule: %+v", day)
	}
}

func TestDefaultWeeklyAvailability_FreshValuePerCall(t *testing.T) {
	a := DefaultWeeklyAvailability()
	b := DefaultWeeklyAvailability()

	a["monday"] = json.RawMessage(`null`)

	day, err := NormalizeDay(b["monday"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Variant != VariantInterval || !day.Available {
		t.Fatalf("default monday should stay a workday, got %+v", day)
	}

	sat, err := NormalizeDay(b["saturday"])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sat.Available {
		t.Fatalf("default saturday should be closed")
	}
}
