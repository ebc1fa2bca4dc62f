package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherly/events-api/internal/api"
	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/service"
	"github.com/gatherly/events-api/internal/infrastructure/cache"
	"github.com/gatherly/events-api/internal/infrastructure/crm"
	"github.com/gatherly/events-api/internal/pkg/config"
	"github.com/gatherly/events-api/pkg/logger"
)

// @title        Events API
// @version      1.0
// @description  Event-management API backed by a Salesforce CRM.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	// CRM session: fail fast if the service credentials are rejected.
	crmClient, err := crm.Connect(ctx, crm.Config{
		LoginURL:     cfg.Salesforce.LoginURL,
		ClientID:     cfg.Salesforce.ClientID,
		ClientSecret: cfg.Salesforce.ClientSecret,
		Username:     cfg.Salesforce.Username,
		Password:     cfg.Salesforce.Password,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("crm connection failed")
	}

	rdb, err := cache.Connect(ctx, cache.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, domain.TokenTTL)
	authService := service.NewAuthService(crm.NewUserRepository(crmClient), tokenService)
	eventService := service.NewEventService(crm.NewEventRepository(crmClient), cache.NewEventCache(rdb), log)
	attendeeService := service.NewAttendeeService(crm.NewAttendeeRepository(crmClient), log)

	e := api.NewRouter(api.Deps{
		AuthService:     authService,
		EventService:    eventService,
		AttendeeService: attendeeService,
		Verifier:        tokenService,
		CRM:             crmClient,
		Redis:           rdb,
		AllowedOrigin:   cfg.AllowedOrigin,
		Log:             log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("events api listening")

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped cleanly")
}
