package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/aparatus-booking/internal/audit"
	"github.com/BruksfildServices01/aparatus-booking/internal/cache"
	"github.com/BruksfildServices01/aparatus-booking/internal/config"
	domain "github.com/BruksfildServices01/aparatus-booking/internal/domain/booking"
	"github.com/BruksfildServices01/aparatus-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/aparatus-booking/internal/infra/repository"
	"github.com/BruksfildServices01/aparatus-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/aparatus-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	pages *cache.Pages,
	log zerolog.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES (BOOKINGS)
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailableTimes(bookingRepo)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		pages,
		auditDispatcher,
		log,
	)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		pages,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db, pages)

	barberHandler := handlers.NewBarberHandler(db, pages, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, pages)
	customerHandler := handlers.NewCustomerHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		confirmBookingUC,
		updateStatusUC,
		availabilityUC,
		listByDateUC,
		listByMonthUC,
		log,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		pages,
		availabilityUC,
		confirmBookingUC,
		log,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetShopPage)
			publicAPI.GET("/:slug/availability", publicHandler.GetAvailability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/:slug/customer", publicHandler.GetCustomerByPhone)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/dashboard", dashboardHandler.GetMetrics)

			secured.GET("/me/customers", customerHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create(domain.DefaultWeeklyAvailability))
			secured.PATCH("/me/barbers/:id", barberHandler.Update)
			secured.DELETE("/me/barbers/:id", barberHandler.Delete)
			secured.PUT("/me/barbers/:id/availability", barberHandler.UpdateAvailability)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings/availability", bookingHandler.GetAvailability)
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
