package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/middleware"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
	"github.com/BruksfildServices01/aparatus-booking/internal/timezone"
)

type BarbershopHandler struct {
	db    *gorm.DB
	pages PageInvalidator
}

func NewBarbershopHandler(db *gorm.DB, pages PageInvalidator) *BarbershopHandler {
	return &BarbershopHandler{db: db, pages: pages}
}

type UpdateBarbershopRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	LogoURL           *string `json:"logo_url"`
	Timezone          *string `json:"timezone"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopIDVal, _ := c.Get(middleware.ContextBarbershopID)
	barbershopID := barbershopIDVal.(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopIDVal, _ := c.Get(middleware.ContextBarbershopID)
	barbershopID := barbershopIDVal.(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar dados da barbearia.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.LogoURL != nil {
		shop.LogoURL = *req.LogoURL
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.WriteField(c, "invalid_timezone", "Fuso horário inválido.", "timezone")
			return
		}
		shop.Timezone = *req.Timezone
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.WriteField(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).", "min_advance_minutes")
			return
		}
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar as configurações da barbearia.")
		return
	}

	if h.pages != nil {
		_ = h.pages.InvalidateShop(c.Request.Context(), shop.Slug)
	}

	c.JSON(http.StatusOK, shop)
}
