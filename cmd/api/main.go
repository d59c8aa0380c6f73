package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/config"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/handler"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/metrics"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/schedule"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Fortuna Reminders API
// @version 1.0
// @description Upcoming recurring bill payments and estimated fuel purchases.
// @BasePath /api
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	// Load the payment schedule once; it is never modified afterwards
	sched, err := schedule.Load(cfg.ScheduleFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.ScheduleFile).Msg("Failed to load payment schedule")
	}
	log.Info().
		Int("payments", len(sched.Payments)).
		Bool("fuel_enabled", sched.Fuel.Enabled).
		Bool("fuel_active", sched.Fuel.Active()).
		Msg("Payment schedule loaded")

	appMetrics := metrics.New()

	reminderService := service.NewReminderService(sched).WithRecorder(appMetrics)
	reminderHandler := handler.NewReminderHandler(reminderService)

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	e.Use(middleware.RequestLogger(appMetrics))
	e.Use(echomiddleware.Recover())

	handler.RegisterRoutes(e, rateLimiter, appMetrics, reminderHandler)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
