package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/jlbeauty/salon-booking-api/internal/audit"
	"github.com/jlbeauty/salon-booking-api/internal/cache"
	"github.com/jlbeauty/salon-booking-api/internal/config"
	"github.com/jlbeauty/salon-booking-api/internal/handlers"
	"github.com/jlbeauty/salon-booking-api/internal/infra/repository"
	"github.com/jlbeauty/salon-booking-api/internal/middleware"
	"github.com/jlbeauty/salon-booking-api/internal/roles"
	"github.com/jlbeauty/salon-booking-api/internal/seed"
	ucbooking "github.com/jlbeauty/salon-booking-api/internal/usecase/booking"
	"github.com/jlbeauty/salon-booking-api/internal/wizard"
)

// RegisterRoutes wires the whole API surface. A nil redis client is
// allowed: the catalog cache turns off and wizard drafts fall back to the
// in-process store.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) *audit.Dispatcher {

	// ======================================================
	// INFRASTRUCTURE
	// ======================================================

	repo := repository.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), log)
	resolver := roles.NewResolver(db, cfg.SuperAdmins, log)
	catalog := cache.NewCatalog(rdb, log)
	seeder := seed.NewSeeder(db)

	var draftStore wizard.Store
	if rdb != nil {
		draftStore = wizard.NewRedisStore(rdb)
	} else {
		draftStore = wizard.NewMemoryStore()
	}

	// ======================================================
	// USE CASES
	// ======================================================

	confirmUC := ucbooking.NewConfirmBooking(repo, dispatcher, cfg.Timezone)
	rescheduleUC := ucbooking.NewRescheduleBooking(repo, dispatcher)
	cancelUC := ucbooking.NewCancelBooking(repo, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, catalog)
	bookingHandler := handlers.NewBookingHandler(draftStore, repo, confirmUC)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db, repo, rescheduleUC, cancelUC)
	serviceHandler := handlers.NewServiceHandler(db, catalog, seeder, dispatcher)
	teamHandler := handlers.NewTeamHandler(db, catalog, seeder, dispatcher)
	reviewHandler := handlers.NewReviewHandler(db, catalog, seeder, dispatcher)
	appointmentHandler := handlers.NewAppointmentAdminHandler(db, dispatcher)
	userHandler := handlers.NewUserAdminHandler(db, dispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

	// ======================================================
	// PUBLIC
	// ======================================================

	public := r.Group("/api/public")
	{
		public.GET("/services", publicHandler.ListServices)
		public.GET("/team", publicHandler.ListTeam)
		public.GET("/reviews", publicHandler.ListReviews)
		public.GET("/slots", bookingHandler.ListSlots)
	}

	// ======================================================
	// AUTH
	// ======================================================

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
	}

	// ======================================================
	// BOOKING WIZARD (anonymous drafts)
	// ======================================================

	drafts := r.Group("/api/booking/drafts")
	{
		drafts.POST("", bookingHandler.CreateDraft)
		drafts.GET("/:id", bookingHandler.GetDraft)
		drafts.PUT("/:id/service", bookingHandler.SelectService)
		drafts.PUT("/:id/professional", bookingHandler.SelectProfessional)
		drafts.PUT("/:id/schedule", bookingHandler.SelectSchedule)
		drafts.POST("/:id/back", bookingHandler.Back)
	}

	// ======================================================
	// SIGNED-IN
	// ======================================================

	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.POST("/booking/drafts/:id/confirm", bookingHandler.Confirm)

		secured.GET("/me", meHandler.GetMe)
		secured.GET("/me/appointments", profileHandler.ListAppointments)
		secured.PATCH("/me/appointments/:id", profileHandler.Reschedule)
		secured.DELETE("/me/appointments/:id", profileHandler.Cancel)
		secured.POST("/me/reviews", profileHandler.CreateReview)
	}

	// ======================================================
	// ADMIN
	// ======================================================

	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware(resolver))
	{
		admin.GET("/services", serviceHandler.List)
		admin.POST("/services", serviceHandler.Create)
		admin.PATCH("/services/:id", serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)
		admin.POST("/services/seed", serviceHandler.Seed)

		admin.GET("/team", teamHandler.List)
		admin.POST("/team", teamHandler.Create)
		admin.PATCH("/team/:id", teamHandler.Update)
		admin.DELETE("/team/:id", teamHandler.Delete)
		admin.POST("/team/seed", teamHandler.Seed)

		admin.GET("/reviews", reviewHandler.List)
		admin.POST("/reviews", reviewHandler.Create)
		admin.PATCH("/reviews/:id", reviewHandler.Update)
		admin.DELETE("/reviews/:id", reviewHandler.Delete)
		admin.POST("/reviews/seed", reviewHandler.Seed)

		admin.GET("/appointments", appointmentHandler.List)
		admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		admin.DELETE("/appointments/:id", appointmentHandler.Delete)

		admin.GET("/users", userHandler.List)
		admin.GET("/users/lookup", userHandler.Lookup)
		admin.PATCH("/users/:id/role", userHandler.UpdateRole)

		admin.GET("/dashboard", dashboardHandler.Overview)
	}

	return dispatcher
}
