package timezone

import "time"

var defaultTimezone = "America/Sao_Paulo"

// SetDefault define o fuso de operação do deploy. Chamado uma vez no
// boot com o valor do config. O fuso do host nunca é consultado.
func SetDefault(tz string) {
	if IsValid(tz) {
		defaultTimezone = tz
	}
}

func Default() string {
	return defaultTimezone
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(defaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
