package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/aparatus-booking/internal/audit"
	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/middleware"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db    *gorm.DB
	pages PageInvalidator
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, pages PageInvalidator, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{
		db:    db,
		pages: pages,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	AvatarURL   string `json:"avatar_url"`
}

type UpdateBarberRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

type UpdateAvailabilityRequest struct {
	Availability map[string]json.RawMessage `json:"availability" binding:"required"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

// Create recebe a disponibilidade inicial como valor explícito
// (default do roteador: seg a sex 09:00-18:00). Nada de singleton
// global mutável compartilhado entre criações.
func (h *BarberHandler) Create(defaultAvailability func() domain.WeeklyAvailability) gin.HandlerFunc {
	return func(c *gin.Context) {
		barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
		userID := c.MustGet(middleware.ContextUserID).(uint)

		var req CreateBarberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}

		raw, err := json.Marshal(defaultAvailability())
		if err != nil {
			httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
			return
		}

		barber := models.Barber{
			BarbershopID: barbershopID,
			Name:         req.Name,
			Description:  req.Description,
			AvatarURL:    req.AvatarURL,
			Active:       true,
			Availability: models.JSON(raw),
		}

		if err := h.db.Create(&barber).Error; err != nil {
			httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
			return
		}

		h.invalidateShopPages(c, barbershopID)

		h.audit.Dispatch(audit.Event{
			BarbershopID: barbershopID,
			UserID:       &userID,
			Action:       "barber_created",
			Entity:       "barber",
			EntityID:     &barber.ID,
		})

		c.JSON(http.StatusCreated, barber)
	}
}

func (h *BarberHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	barber, ok := h.findBarber(c, barbershopID)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Description != nil {
		barber.Description = *req.Description
	}
	if req.AvatarURL != nil {
		barber.AvatarURL = *req.AvatarURL
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	h.invalidateShopPages(c, barbershopID)

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	barber, ok := h.findBarber(c, barbershopID)
	if !ok {
		return
	}

	if err := h.db.Delete(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao remover barbeiro.")
		return
	}

	h.invalidateShopPages(c, barbershopID)

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "barber_deleted",
		Entity:       "barber",
		EntityID:     &barber.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// AVAILABILITY (overwrite total, sem merge parcial de dias)
// ======================================================

func (h *BarberHandler) UpdateAvailability(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	barber, ok := h.findBarber(c, barbershopID)
	if !ok {
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// valida cada dia ANTES de gravar: chave tem que ser dia da
	// semana, valor tem que normalizar em um dos dois formatos
	for key, raw := range req.Availability {
		if !isWeekdayKey(key) {
			httperr.WriteField(c, "invalid_weekday", "Dia da semana inválido: "+key, "availability")
			return
		}
		if _, err := domain.NormalizeDay(raw); err != nil {
			httperr.WriteField(c, "invalid_schedule_format", "Formato de disponibilidade não reconhecido em "+key, "availability")
			return
		}
	}

	raw, err := json.Marshal(req.Availability)
	if err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Erro ao salvar disponibilidade.")
		return
	}

	barber.Availability = models.JSON(raw)

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Erro ao salvar disponibilidade.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "barber_availability_updated",
		Entity:       "barber",
		EntityID:     &barber.ID,
	})

	c.JSON(http.StatusOK, barber)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BarberHandler) findBarber(c *gin.Context, barbershopID uint) (*models.Barber, bool) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&barber).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return nil, false
	}

	return &barber, true
}

func (h *BarberHandler) invalidateShopPages(c *gin.Context, barbershopID uint) {
	if h.pages == nil {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		return
	}
	_ = h.pages.InvalidateShop(c.Request.Context(), shop.Slug)
}

func isWeekdayKey(key string) bool {
	switch key {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	}
	return false
}
