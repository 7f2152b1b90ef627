package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/slotframe-app/slotframe/internal/audit"
	"github.com/slotframe-app/slotframe/internal/cache"
	"github.com/slotframe-app/slotframe/internal/config"
	"github.com/slotframe-app/slotframe/internal/handlers"
	infraRepo "github.com/slotframe-app/slotframe/internal/infra/repository"
	"github.com/slotframe-app/slotframe/internal/middleware"
	ucSchedule "github.com/slotframe-app/slotframe/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ------------------------------
	// INFRA (singletons)
	// ------------------------------
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	frameCache := cache.NewFrameCache(rdb, time.Duration(cfg.CacheTTLSec)*time.Second)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)

	// ------------------------------
	// USE CASES
	// ------------------------------
	generateSlotsUC := ucSchedule.NewGenerateSlots()

	createFrameUC := ucSchedule.NewCreateFrame(
		scheduleRepo,
		frameCache,
		auditDispatcher,
	)

	listFramesUC := ucSchedule.NewListFrames(
		scheduleRepo,
		frameCache,
	)

	getFrameUC := ucSchedule.NewGetFrame(
		scheduleRepo,
	)

	deleteFrameUC := ucSchedule.NewDeleteFrame(
		scheduleRepo,
		frameCache,
		auditDispatcher,
	)

	confirmBookingUC := ucSchedule.NewConfirmBooking(
		scheduleRepo,
		frameCache,
		auditDispatcher,
	)

	cancelBookingUC := ucSchedule.NewCancelBooking(
		scheduleRepo,
		frameCache,
		auditDispatcher,
	)

	listAppointmentsUC := ucSchedule.NewListAppointments(
		scheduleRepo,
	)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	frameHandler := handlers.NewScheduleFrameHandler(
		generateSlotsUC,
		createFrameUC,
		listFramesUC,
		getFrameUC,
		deleteFrameUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		confirmBookingUC,
		cancelBookingUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
	)

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		// AUTH
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(authLimiter))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// AUTHENTICATED
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/frames", frameHandler.List)
			secured.GET("/frames/:id", frameHandler.Get)
			secured.POST("/frames/:id/bookings", bookingHandler.Confirm)

			secured.GET("/appointments", appointmentHandler.List)

			// ADMIN
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/slots/generate", frameHandler.GenerateSlots)
				admin.POST("/frames", frameHandler.Create)
				admin.DELETE("/frames/:id", frameHandler.Delete)
				admin.DELETE("/frames/:id/bookings", bookingHandler.Cancel)

				admin.GET("/users", userHandler.List)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
