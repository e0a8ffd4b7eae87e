package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	appointmentDomain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	availabilityDomain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/handlers"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/metrics"
	"github.com/BruksfildServices01/agenda-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/appointment"
	ucAvailability "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/availability"
	ucCatalog "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/catalog"
	ucIdentity "github.com/BruksfildServices01/agenda-scheduler/internal/usecase/identity"
)

// Deps são os singletons montados pelo cmd (postgres ou memória).
type Deps struct {
	Config *config.Config
	Log    zerolog.Logger

	Users        identity.Users
	Services     catalog.Repository
	Availability availabilityDomain.Repository
	Appointments appointmentDomain.Repository

	AuditStore audit.Store
	Audit      *audit.Dispatcher
	Locker     lock.Locker
	Metrics    *metrics.Metrics

	Health map[string]handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(d.Log, d.Metrics))
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins))
	if d.Config.RateLimitPerMinute > 0 {
		r.Use(middleware.RateLimit(d.Config.RateLimitPerMinute))
	}

	// ======================================================
	// USE CASES: AVAILABILITY
	// ======================================================
	createAvailabilityUC := ucAvailability.NewCreateAvailability(
		d.Availability,
		d.Users,
		d.Locker,
		d.Audit,
		d.Metrics,
	)

	updateAvailabilityUC := ucAvailability.NewUpdateAvailability(
		d.Availability,
		d.Locker,
		d.Audit,
		d.Metrics,
	)

	deleteAvailabilityUC := ucAvailability.NewDeleteAvailability(
		d.Availability,
		d.Locker,
		d.Audit,
		d.Metrics,
	)

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Appointments,
		d.Availability,
		d.Services,
		d.Users,
		d.Locker,
		d.Audit,
		d.Metrics,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		d.Appointments,
		d.Locker,
		d.Audit,
		d.Metrics,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		d.Appointments,
		d.Locker,
		d.Audit,
		d.Metrics,
	)

	generateSlotsUC := ucAppointment.NewGenerateSlots(
		d.Appointments,
		d.Availability,
		d.Services,
		d.Users,
		d.Metrics,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Users, d.Config, d.Audit)
	meHandler := handlers.NewMeHandler(d.Users)
	userHandler := handlers.NewUserHandler(
		ucIdentity.NewManageUsers(d.Users, d.Audit),
	)
	serviceHandler := handlers.NewServiceHandler(
		ucCatalog.NewManageServices(d.Services, d.Users, d.Audit),
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		createAvailabilityUC,
		updateAvailabilityUC,
		deleteAvailabilityUC,
		ucAvailability.NewListAvailability(d.Availability),
		ucAvailability.NewGetAvailability(d.Availability),
		generateSlotsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		ucAppointment.NewListAppointments(d.Appointments),
		ucAppointment.NewGetAppointment(d.Appointments),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore)
	healthHandler := handlers.NewHealthHandler(d.Health)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// USERS
			// ------------------------------
			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)
			secured.PUT("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// AVAILABILITY
			// ------------------------------
			secured.GET("/availability", availabilityHandler.List)
			secured.GET("/availability/slots", availabilityHandler.Slots)
			secured.GET("/availability/:id", availabilityHandler.Get)
			secured.POST("/availability", availabilityHandler.Create)
			secured.PUT("/availability/:id", availabilityHandler.Update)
			secured.DELETE("/availability/:id", availabilityHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/client/:clientId", appointmentHandler.ListByClient)
			secured.GET("/appointments/provider/:providerId", appointmentHandler.ListByProvider)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET(
				"/audit-logs",
				middleware.RequireRole(identity.RoleAdmin),
				auditLogsHandler.List,
			)
		}
	}
}
