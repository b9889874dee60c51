package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/httpresp"
	"github.com/BruksfildServices01/aparatus-booking/internal/middleware"
	"github.com/BruksfildServices01/aparatus-booking/internal/models"
	usecase "github.com/BruksfildServices01/aparatus-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	confirm *usecase.ConfirmBooking
	status  *usecase.UpdateBookingStatus
	avail   *usecase.GetAvailableTimes
	byDate  *usecase.ListBookingsByDate
	byMonth *usecase.ListBookingsByMonth

	log zerolog.Logger
}

func NewBookingHandler(
	db *gorm.DB,
	confirm *usecase.ConfirmBooking,
	status *usecase.UpdateBookingStatus,
	avail *usecase.GetAvailableTimes,
	byDate *usecase.ListBookingsByDate,
	byMonth *usecase.ListBookingsByMonth,
	log zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		db:      db,
		confirm: confirm,
		status:  status,
		avail:   avail,
		byDate:  byDate,
		byMonth: byMonth,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  uint `json:"barber_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	// CustomerID OU (customer_name + customer_phone)
	CustomerID    uint   `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	Date  string `json:"date" binding:"required"` // YYYY-MM-DD
	Time  string `json:"time" binding:"required"` // HH:mm
	Notes string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ADMIN / AGENDA
// ======================================================

// GetAvailability é usado pelo painel ao criar agendamento manual:
// GET /bookings/availability?barber_id=&service_id=&date=YYYY-MM-DD
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	barberID, err1 := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_request", "barber_id e service_id são obrigatórios.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, c.Query("date"))
	if err != nil {
		httperr.WriteField(c, "invalid_date", "Data inválida, use YYYY-MM-DD.", "date")
		return
	}

	times, err := h.avail.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: barbershopID,
		BarberID:     uint(barberID),
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"times": times})
}

// Create agenda pelo painel admin (cliente existente ou novo por
// telefone), pela mesma trilha de confirmação do fluxo público.
func (h *BookingHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), usecase.ConfirmBookingInput{
		BarbershopID:  barbershopID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		CustomerID:    req.CustomerID,
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

	httpresp.Created(c, b)
}

func (h *BookingHandler) ListByDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, c.Query("date"))
	if err != nil {
		httperr.WriteField(c, "invalid_date", "Data inválida, use YYYY-MM-DD.", "date")
		return
	}

	barberID := optionalUintQuery(c, "barber_id")

	items, err := h.byDate.Execute(c.Request.Context(), barbershopID, barberID, date)
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_period", "Informe year e month válidos.")
		return
	}

	barberID := optionalUintQuery(c, "barber_id")

	items, err := h.byMonth.Execute(c.Request.Context(), barbershopID, barberID, year, month)
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}

	httpresp.List(c, items)
}

// UpdateStatus transiciona o status (CONFIRMED→CANCELED etc.).
// Agendamento nunca é apagado pela API.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "ID de agendamento inválido.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.status.Execute(
		c.Request.Context(),
		barbershopID,
		userID,
		uint(bookingID),
		req.Status,
	)
	if err != nil {
		writeBookingError(c, h.log, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// writeBookingError traduz os BusinessError do core em HTTP:
// entrada malformada → 400, recurso ausente → 404, conflito de
// estado (horário tomado, muito em cima da hora) → 409.
func writeBookingError(c *gin.Context, log zerolog.Logger, err error) {
	switch code := httperr.BusinessCode(err); code {

	case "invalid_date_or_time":
		httperr.WriteField(c, code, "Data ou hora inválida.", "date")
	case "invalid_duration":
		httperr.WriteField(c, code, "Serviço com duração inválida.", "service_id")
	case "invalid_phone":
		httperr.WriteField(c, code, "Telefone inválido.", "customer_phone")
	case "customer_required":
		httperr.WriteField(c, code, "Informe nome e telefone do cliente.", "customer_name")
	case "invalid_status":
		httperr.WriteField(c, code, "Status desconhecido.", "status")
	case "invalid_schedule_format":
		httperr.BadRequest(c, code, "Disponibilidade do barbeiro em formato não reconhecido.")

	case "barbershop_not_found":
		httperr.NotFound(c, code, "Barbearia não encontrada.")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado.")
	case "service_not_found":
		httperr.NotFound(c, code, "Serviço não encontrado.")
	case "booking_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "customer_not_found":
		httperr.NotFound(c, code, "Cliente não encontrado.")

	case "slot_no_longer_available":
		httperr.Conflict(c, code, "Esse horário acabou de ser ocupado. Escolha outro.")
	case "slot_already_booked":
		httperr.Conflict(c, code, "Esse horário já está reservado.")
	case "too_soon":
		httperr.Conflict(c, code, "Horário abaixo da antecedência mínima da barbearia.")
	case "availability_not_configured":
		httperr.Conflict(c, code, "Barbeiro sem disponibilidade configurada.")
	case "invalid_state":
		httperr.Conflict(c, code, "Agendamento não está mais ativo.")

	default:
		log.Error().Err(err).Msg("erro inesperado no fluxo de agendamento")
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

func optionalUintQuery(c *gin.Context, key string) uint {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
