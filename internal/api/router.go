package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/gatherly/events-api/docs"
	"github.com/gatherly/events-api/internal/api/handler"
	"github.com/gatherly/events-api/internal/api/middleware"
	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/ports"
	"github.com/gatherly/events-api/internal/infrastructure/crm"
	healthhandlers "github.com/gatherly/events-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	AuthService     ports.AuthService
	EventService    ports.EventService
	AttendeeService ports.AttendeeService
	Verifier        ports.TokenVerifier
	CRM             *crm.Client
	Redis           *redis.Client
	AllowedOrigin   string
	Log             zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("events_api"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{d.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStore(rate.Limit(20)),
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	eventHandler := handler.NewEventHandler(d.EventService)
	attendeeHandler := handler.NewAttendeeHandler(d.AttendeeService)

	authRequired := middleware.Auth(d.Verifier)
	organizerOrAdmin := middleware.RBAC(domain.RoleOrganizer, domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authRequired)
	auth.PUT("/profile", authHandler.UpdateProfile, authRequired)
	auth.DELETE("/profile", authHandler.DeleteAccount, authRequired)

	// --- Event routes ---
	events := e.Group("/api/events")
	events.GET("", eventHandler.List)
	events.GET("/:id", eventHandler.Get)
	events.GET("/:id/attendees", attendeeHandler.ListByEvent)
	events.POST("", eventHandler.Create, authRequired, organizerOrAdmin)
	events.PUT("/:id", eventHandler.Update, authRequired, organizerOrAdmin)
	events.DELETE("/:id", eventHandler.Delete, authRequired, organizerOrAdmin)

	// --- Attendee routes ---
	attendees := e.Group("/api/attendees")
	attendees.POST("", attendeeHandler.Register, authRequired)
	attendees.GET("/:eventId", attendeeHandler.ListByEvent)
	attendees.PUT("/cancel/:attendeeId", attendeeHandler.Cancel, authRequired)
	attendees.DELETE("/:attendeeId", attendeeHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(d.CRM, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
