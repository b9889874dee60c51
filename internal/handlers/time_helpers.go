package handlers

import (
	"time"

	"github.com/BruksfildServices01/aparatus-booking/internal/models"
	"github.com/BruksfildServices01/aparatus-booking/internal/timezone"
)

// resolve o timezone oficial da barbearia (fallback: fuso de operação
// do deploy, vindo do config)
func locationFromShop(shop *models.Barbershop) *time.Location {
	if shop != nil && shop.Timezone != "" {
		return timezone.Location(shop.Timezone)
	}
	return timezone.Location(timezone.Default())
}

func nowInShop(shop *models.Barbershop) time.Time {
	return time.Now().In(locationFromShop(shop))
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}

func parseDateTimeInShop(
	shop *models.Barbershop,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromShop(shop),
	)
}
