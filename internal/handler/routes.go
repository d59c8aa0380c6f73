package handler

import (
	"net/http"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/metrics"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, m *metrics.Metrics, reminderHandler *ReminderHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/openapi.json", ServeSwaggerSpec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))
	api.GET("/reminders", reminderHandler.GetReminders)

	// Versioned alias
	v1 := api.Group("/v1")
	v1.GET("/reminders", reminderHandler.GetReminders)
}
