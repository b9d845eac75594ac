package routes

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/donbarbero/booking-api/internal/audit"
	"github.com/donbarbero/booking-api/internal/config"
	"github.com/donbarbero/booking-api/internal/handlers"
	infraRepo "github.com/donbarbero/booking-api/internal/infra/repository"
	"github.com/donbarbero/booking-api/internal/middleware"
	"github.com/donbarbero/booking-api/internal/payment"
	"github.com/donbarbero/booking-api/internal/storage"
	ucReport "github.com/donbarbero/booking-api/internal/usecase/report"
	ucScheduling "github.com/donbarbero/booking-api/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewUploader(cfg)

	var mpClient *payment.Client
	if cfg.MPAccessToken != "" {
		client, err := payment.New(cfg.MPAccessToken)
		if err != nil {
			log.Printf("mercado pago disabled: %v", err)
		} else {
			mpClient = client
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucScheduling.NewGetAvailability(schedulingRepo)
	datesUC := ucScheduling.NewListAvailableDates(schedulingRepo)
	createBookingUC := ucScheduling.NewCreateBooking(schedulingRepo, auditDispatcher)
	cancelBookingUC := ucScheduling.NewCancelBooking(schedulingRepo, auditDispatcher, cfg.CancelNotice)
	updateStatusUC := ucScheduling.NewUpdateStatus(schedulingRepo, auditDispatcher)
	confirmPaymentUC := ucScheduling.NewConfirmPayment(schedulingRepo, auditDispatcher)
	financeUC := ucReport.NewFinance(schedulingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		datesUC,
		createBookingUC,
		cancelBookingUC,
	)

	adminHandler := handlers.NewAdminHandler(
		db,
		updateStatusUC,
		confirmPaymentUC,
		financeUC,
	)

	serviceHandler := handlers.NewServiceHandler(db, uploader)
	settingsHandler := handlers.NewSettingsHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, mpClient, confirmPaymentUC)

	authLimit := middleware.RateLimit(rdb, 10, time.Minute)
	bookingLimit := middleware.RateLimit(rdb, 20, time.Minute)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/services", bookingHandler.ListServices)

		api.POST("/auth/register", authLimit, authHandler.Register)
		api.POST("/auth/login", authLimit, authHandler.Login)

		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// CLIENTE AUTENTICADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", profileHandler.Get)
			secured.PATCH("/me", profileHandler.Update)

			secured.GET("/dates", bookingHandler.AvailableDates)
			secured.GET("/availability", bookingHandler.Availability)

			secured.POST("/me/appointments", bookingLimit, bookingHandler.Create)
			secured.GET("/me/appointments", bookingHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", bookingHandler.Cancel)
			secured.POST("/me/appointments/:id/pay", paymentHandler.CreateCheckout)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", adminHandler.ListAppointments)
				admin.PATCH("/appointments/:id/status", adminHandler.UpdateStatus)
				admin.PATCH("/appointments/:id/confirm-payment", adminHandler.ConfirmPayment)

				admin.GET("/finance", adminHandler.Finance)
				admin.GET("/finance/export", adminHandler.FinanceExport)

				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.POST("/services/:id/image", serviceHandler.UploadImage)

				admin.GET("/settings", settingsHandler.Get)
				admin.PUT("/settings", settingsHandler.Update)
			}
		}
	}
}
