package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/middleware"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type dailyRevenuePoint struct {
	Day     string  `json:"day"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

// GetMetrics calcula os números do painel no timezone da barbearia.
// Receita considera apenas agendamentos COMPLETED; contagens do mês
// incluem qualquer status não cancelado.
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	now := nowInShop(&shop)
	loc := locationFromShop(&shop)

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	todayEnd := todayStart.Add(24 * time.Hour)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	todayRevenue, err := h.revenueBetween(barbershopID, todayStart, todayEnd)
	if err != nil {
		httperr.Internal(c, "failed_to_get_metrics", "Erro ao calcular métricas.")
		return
	}

	monthRevenue, err := h.revenueBetween(barbershopID, monthStart, monthEnd)
	if err != nil {
		httperr.Internal(c, "failed_to_get_metrics", "Erro ao calcular métricas.")
		return
	}

	var todayBookings int64
	if err := h.db.
		Model(&models.Booking{}).
		Where("barbershop_id = ? AND start_time >= ? AND start_time < ? AND status <> 'CANCELED'",
			barbershopID, todayStart, todayEnd).
		Count(&todayBookings).Error; err != nil {

		httperr.Internal(c, "failed_to_get_metrics", "Erro ao calcular métricas.")
		return
	}

	var monthBookings int64
	if err := h.db.
		Model(&models.Booking{}).
		Where("barbershop_id = ? AND start_time >= ? AND start_time < ? AND status <> 'CANCELED'",
			barbershopID, monthStart, monthEnd).
		Count(&monthBookings).Error; err != nil {

		httperr.Internal(c, "failed_to_get_metrics", "Erro ao calcular métricas.")
		return
	}

	var pendingBookings int64
	if err := h.db.
		Model(&models.Booking{}).
		Where("barbershop_id = ? AND status = 'PENDING' AND start_time >= ?",
			barbershopID, now).
		Count(&pendingBookings).Error; err != nil {

		httperr.Internal(c, "failed_to_get_metrics", "Erro ao calcular métricas.")
		return
	}

	daily, err := h.dailyRevenue(barbershopID, monthStart, monthEnd)
	if err != nil {
		httperr.Internal(c, "failed_to_get_metrics", "Erro ao calcular métricas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_revenue":    todayRevenue,
		"month_revenue":    monthRevenue,
		"today_bookings":   todayBookings,
		"month_bookings":   monthBookings,
		"pending_bookings": pendingBookings,
		"daily_revenue":    daily,
	})
}

// ======================================================
// QUERIES
// ======================================================

func (h *DashboardHandler) revenueBetween(
	barbershopID uint,
	start, end time.Time,
) (float64, error) {

	var revenue float64
	err := h.db.
		Table("bookings").
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.barbershop_id = ? AND bookings.status = 'COMPLETED'", barbershopID).
		Where("bookings.start_time >= ? AND bookings.start_time < ?", start, end).
		Scan(&revenue).Error

	return revenue, err
}

func (h *DashboardHandler) dailyRevenue(
	barbershopID uint,
	start, end time.Time,
) ([]dailyRevenuePoint, error) {

	var points []dailyRevenuePoint
	err := h.db.
		Table("bookings").
		Select(`TO_CHAR(bookings.start_time, 'YYYY-MM-DD') AS day,
			COALESCE(SUM(services.price), 0) AS revenue`).
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.barbershop_id = ? AND bookings.status = 'COMPLETED'", barbershopID).
		Where("bookings.start_time >= ? AND bookings.start_time < ?", start, end).
		Group("day").
		Order("day ASC").
		Scan(&points).Error

	if points == nil {
		points = []dailyRevenuePoint{}
	}
	return points, err
}
