package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CacheControl lets shared caches keep a manifest for five minutes and
// serve it stale for ten more while revalidating
const CacheControl = "s-maxage=300, stale-while-revalidate=600"

// ContentTypeJSON is the content type of every reminders response
const ContentTypeJSON = "application/json; charset=utf-8"

// generatedAtLayout is ISO-8601 in UTC with millisecond precision
const generatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ReminderHandler handles due-payment reminder requests
type ReminderHandler struct {
	reminderService *service.ReminderService
	now             func() time.Time
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock used to decide "today"
func (h *ReminderHandler) WithClock(now func() time.Time) *ReminderHandler {
	h.now = now
	return h
}

// ManifestResponse represents the reminders API response
type ManifestResponse struct {
	GeneratedAt string               `json:"generatedAt"`
	Currency    string               `json:"currency"`
	Fuel        any                  `json:"fuel"`
	Days        []DaySummaryResponse `json:"days"`
} //@name Manifest

// FuelResponse describes enabled fuel estimation
type FuelResponse struct {
	Enabled      bool        `json:"enabled"`
	Cost         json.Number `json:"cost" swaggertype:"number"`
	IntervalDays int         `json:"intervalDays"`
	LastFill     *string     `json:"lastFill"`
} //@name Fuel

// FuelDisabledResponse is reported when fuel estimation is switched off
type FuelDisabledResponse struct {
	Enabled bool `json:"enabled"`
} //@name FuelDisabled

// DaySummaryResponse lists the items due on one date
type DaySummaryResponse struct {
	In    int               `json:"in"`
	Date  string            `json:"date"`
	Total json.Number       `json:"total" swaggertype:"number"`
	Items []DueItemResponse `json:"items"`
} //@name DaySummary

// DueItemResponse is a single amount due
type DueItemResponse struct {
	Name   string      `json:"name"`
	Amount json.Number `json:"amount" swaggertype:"number"`
} //@name DueItem

// GetReminders godoc
// @Summary List upcoming due payments
// @Description Projects which recurring payments (and estimated fuel) fall due on each of the next days
// @Tags reminders
// @Produce json
// @Param days query int false "Days to project, clamped to 1-14" default(7)
// @Success 200 {object} ManifestResponse
// @Failure 429 {object} ProblemDetails
// @Router /reminders [get]
func (h *ReminderHandler) GetReminders(c echo.Context) error {
	days := domain.DefaultHorizonDays
	if raw, ok := c.QueryParams()["days"]; ok && len(raw) > 0 {
		days = domain.ParseHorizon(raw[0])
	}

	manifest := h.reminderService.Project(days, h.now())

	c.Response().Header().Set(echo.HeaderCacheControl, CacheControl)
	return jsonUTF8(c, http.StatusOK, ToManifestResponse(manifest))
}

// ToManifestResponse converts a manifest into its wire form
func ToManifestResponse(m *domain.Manifest) ManifestResponse {
	days := make([]DaySummaryResponse, len(m.Days))
	for i, d := range m.Days {
		items := make([]DueItemResponse, len(d.Items))
		for j, item := range d.Items {
			items[j] = DueItemResponse{
				Name:   item.Name,
				Amount: amountNumber(item.Amount),
			}
		}
		days[i] = DaySummaryResponse{
			In:    d.Offset,
			Date:  d.Date.String(),
			Total: amountNumber(d.Total),
			Items: items,
		}
	}

	return ManifestResponse{
		GeneratedAt: m.GeneratedAt.UTC().Format(generatedAtLayout),
		Currency:    m.Currency,
		Fuel:        toFuelResponse(m.Fuel),
		Days:        days,
	}
}

func toFuelResponse(f domain.FuelMeta) any {
	if !f.Enabled {
		return FuelDisabledResponse{Enabled: false}
	}
	resp := FuelResponse{
		Enabled:      true,
		Cost:         amountNumber(f.CostPerFill),
		IntervalDays: f.IntervalDays,
	}
	if f.LastFill != nil {
		lastFill := f.LastFill.String()
		resp.LastFill = &lastFill
	}
	return resp
}

// amountNumber renders an amount as a bare JSON number without trailing zeros
func amountNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// jsonUTF8 writes v as JSON with an explicit charset
func jsonUTF8(c echo.Context, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, ContentTypeJSON, body)
}
