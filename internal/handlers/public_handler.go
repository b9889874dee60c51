package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/aparatus-booking/internal/cache"
	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
	usecase "github.com/BruksfildServices01/aparatus-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serve o fluxo sem login: página da barbearia,
// horários disponíveis e criação do agendamento pelo cliente final.
type PublicHandler struct {
	db    *gorm.DB
	pages *cache.Pages

	avail   *usecase.GetAvailableTimes
	confirm *usecase.ConfirmBooking

	log zerolog.Logger
}

func NewPublicHandler(
	db *gorm.DB,
	pages *cache.Pages,
	avail *usecase.GetAvailableTimes,
	confirm *usecase.ConfirmBooking,
	log zerolog.Logger,
) *PublicHandler {
	return &PublicHandler{
		db:      db,
		pages:   pages,
		avail:   avail,
		confirm: confirm,
		log:     log,
	}
}

// ======================================================
// PÁGINA PÚBLICA
// ======================================================

type publicServiceDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

type publicBarberDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatar_url"`
}

// GetShopPage monta o payload do catálogo. Sem filtros de query o
// payload sai do redis quando há hit; com filtros sempre recalcula
// (a combinação de filtros não vale a pena cachear por chave).
// Disponibilidade nunca entra aqui.
func (h *PublicHandler) GetShopPage(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	sortBy := strings.TrimSpace(c.Query("sort")) // price_asc | price_desc | name

	filtered := category != "" || sortBy != ""

	if !filtered && h.pages != nil {
		if payload, ok := h.pages.Get(c.Request.Context(), slug); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao carregar a página.")
		return
	}

	sq := h.db.
		Where("barbershop_id = ? AND active = ?", shop.ID, true)

	if category != "" {
		sq = sq.Where("LOWER(category) = ?", category)
	}

	switch sortBy {
	case "price_asc":
		sq = sq.Order("price ASC")
	case "price_desc":
		sq = sq.Order("price DESC")
	case "name":
		sq = sq.Order("name ASC")
	default:
		sq = sq.Order("id ASC")
	}

	var services []models.Service
	if err := sq.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao carregar a página.")
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ? AND active = ?", shop.ID, true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao carregar a página.")
		return
	}

	serviceDTOs := make([]publicServiceDTO, 0, len(services))
	for _, s := range services {
		serviceDTOs = append(serviceDTOs, publicServiceDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			DurationMin: s.DurationMin,
			Price:       s.Price,
			Category:    s.Category,
		})
	}

	barberDTOs := make([]publicBarberDTO, 0, len(barbers))
	for _, b := range barbers {
		barberDTOs = append(barberDTOs, publicBarberDTO{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			AvatarURL:   b.AvatarURL,
		})
	}

	payload := gin.H{
		"barbershop": gin.H{
			"name":     shop.Name,
			"slug":     shop.Slug,
			"phone":    shop.Phone,
			"address":  shop.Address,
			"logo_url": shop.LogoURL,
			"timezone": shop.Timezone,
		},
		"services": serviceDTOs,
		"barbers":  barberDTOs,
	}

	if !filtered && h.pages != nil {
		if raw, err := json.Marshal(payload); err == nil {
			h.pages.Set(c.Request.Context(), slug, raw)
		}
	}

	c.JSON(http.StatusOK, payload)
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// GET /public/:slug/availability?barber_id=&service_id=&date=YYYY-MM-DD
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	shop, ok := h.findShop(c)
	if !ok {
		return
	}

	barberID := optionalUintQuery(c, "barber_id")
	serviceID := optionalUintQuery(c, "service_id")
	if barberID == 0 || serviceID == 0 {
		httperr.BadRequest(c, "invalid_request", "barber_id e service_id são obrigatórios.")
		return
	}

	date, err := parseDateInShop(shop, c.Query("date"))
	if err != nil {
		httperr.WriteField(c, "invalid_date", "Data inválida, use YYYY-MM-DD.", "date")
		return
	}

	times, err := h.avail.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		BarberID:     barberID,
		ServiceID:    serviceID,
		Date:         date,
	})
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"times": times})
}

// ======================================================
// AGENDAMENTO PÚBLICO
// ======================================================

type publicBookingRequest struct {
	BarberID  uint `json:"barber_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	shop, ok := h.findShop(c)
	if !ok {
		return
	}

	var req publicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), usecase.ConfirmBookingInput{
		BarbershopID:  shop.ID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}

	// resposta enxuta: o cliente final não precisa dos IDs internos
	c.JSON(http.StatusCreated, gin.H{
		"public_id":  b.PublicID,
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
		"status":     b.Status,
	})
}

// ======================================================
// CLIENTE POR TELEFONE (prefill do formulário público)
// ======================================================

func (h *PublicHandler) GetCustomerByPhone(c *gin.Context) {
	shop, ok := h.findShop(c)
	if !ok {
		return
	}

	phone := validators.NormalizePhone(c.Query("phone"))
	if !validators.HasMinPhoneDigits(phone) {
		httperr.WriteField(c, "invalid_phone", "Telefone incompleto.", "phone")
		return
	}

	var customer models.Customer
	err := h.db.
		Where("barbershop_id = ? AND phone = ?", shop.ID, phone).
		First(&customer).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"found": false})
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Erro ao buscar cliente.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"name":  customer.Name,
	})
}

// ======================================================
// HELPERS
// ======================================================

func (h *PublicHandler) findShop(c *gin.Context) (*models.Barbershop, bool) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Erro ao buscar barbearia.")
		return nil, false
	}

	return &shop, true
}
