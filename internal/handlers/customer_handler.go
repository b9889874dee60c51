package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/aparatus-booking/internal/httperr"
	"github.com/BruksfildServices01/aparatus-booking/internal/middleware"
	"github.com/BruksfildServices01/aparatus-booking/internal/validators"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// linha da listagem admin: cliente + estatísticas de agendamento
type customerRow struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	TotalBookings int64   `json:"total_bookings"`
	TotalSpent    float64 `json:"total_spent"`
	LastVisit     *string `json:"last_visit"`
}

// List devolve os clientes da barbearia com contagem de agendamentos,
// total gasto (apenas COMPLETED) e data da última visita.
func (h *CustomerHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	search := strings.TrimSpace(c.Query("query"))

	q := h.db.
		Table("customers").
		Select(`customers.id,
			customers.name,
			customers.phone,
			customers.email,
			COUNT(bookings.id) AS total_bookings,
			COALESCE(SUM(CASE WHEN bookings.status = 'COMPLETED' THEN services.price ELSE 0 END), 0) AS total_spent,
			TO_CHAR(MAX(CASE WHEN bookings.status = 'COMPLETED' THEN bookings.start_time END), 'YYYY-MM-DD') AS last_visit`).
		Joins("LEFT JOIN bookings ON bookings.customer_id = customers.id").
		Joins("LEFT JOIN services ON services.id = bookings.service_id").
		Where("customers.barbershop_id = ?", barbershopID).
		Group("customers.id")

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		digits := validators.NormalizePhone(search)

		if digits != "" {
			q = q.Where("LOWER(customers.name) LIKE ? OR customers.phone LIKE ?", like, "%"+digits+"%")
		} else {
			q = q.Where("LOWER(customers.name) LIKE ?", like)
		}
	}

	var rows []customerRow
	if err := q.
		Order("customers.name ASC").
		Scan(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	c.JSON(http.StatusOK, rows)
}
