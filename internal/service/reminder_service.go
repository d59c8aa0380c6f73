package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// amountPlaces is the number of decimal places amounts are rounded to
const amountPlaces = 2

// ProjectionRecorder receives a manifest after every projection
type ProjectionRecorder interface {
	RecordProjection(m *domain.Manifest)
}

// ReminderService projects which recurring payments fall due over the next days
type ReminderService struct {
	schedule *domain.Schedule
	recorder ProjectionRecorder
}

// NewReminderService creates a new ReminderService over an immutable schedule.
// The schedule must not be modified after it is handed over.
func NewReminderService(schedule *domain.Schedule) *ReminderService {
	return &ReminderService{schedule: schedule}
}

// WithRecorder attaches a recorder that observes every manifest produced
func (s *ReminderService) WithRecorder(r ProjectionRecorder) *ReminderService {
	s.recorder = r
	return s
}

// Schedule returns the schedule the service projects from
func (s *ReminderService) Schedule() *domain.Schedule {
	return s.schedule
}

// Project builds the manifest for the horizonDays calendar days following
// the UTC date of now. horizonDays is clamped to [1, 14].
// The result depends only on horizonDays, now and the schedule.
func (s *ReminderService) Project(horizonDays int, now time.Time) *domain.Manifest {
	horizonDays = domain.ClampHorizon(horizonDays)
	today := domain.DateOf(now)

	days := make([]domain.DaySummary, 0, horizonDays)
	for i := 1; i <= horizonDays; i++ {
		days = append(days, s.summarizeDay(i, today.AddDays(i)))
	}

	manifest := &domain.Manifest{
		GeneratedAt: now.UTC(),
		Currency:    domain.Currency,
		Fuel:        s.fuelMeta(),
		Days:        days,
	}

	log.Debug().
		Str("from", today.String()).
		Int("horizon_days", horizonDays).
		Int("items", manifest.ItemCount()).
		Str("total", manifest.WindowTotal().StringFixed(amountPlaces)).
		Msg("Projected reminders")

	if s.recorder != nil {
		s.recorder.RecordProjection(manifest)
	}

	return manifest
}

// summarizeDay collects payments in configuration order, then fuel
func (s *ReminderService) summarizeDay(offset int, date domain.Date) domain.DaySummary {
	items := make([]domain.DueItem, 0)

	for _, p := range s.schedule.PaymentsDueOn(date) {
		items = append(items, domain.DueItem{
			Name:   p.Name,
			Amount: roundAmount(p.Amount),
		})
	}

	if s.schedule.Fuel.DueOn(date) {
		items = append(items, domain.DueItem{
			Name:   domain.FuelItemName,
			Amount: roundAmount(s.schedule.Fuel.CostPerFill),
		})
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	return domain.DaySummary{
		Offset: offset,
		Date:   date,
		Total:  roundAmount(total),
		Items:  items,
	}
}

func (s *ReminderService) fuelMeta() domain.FuelMeta {
	fuel := s.schedule.Fuel
	if !fuel.Enabled {
		return domain.FuelMeta{Enabled: false}
	}
	meta := domain.FuelMeta{
		Enabled:      true,
		CostPerFill:  roundAmount(fuel.CostPerFill),
		IntervalDays: fuel.IntervalDays,
	}
	if fuel.LastFill != nil {
		lastFill := *fuel.LastFill
		meta.LastFill = &lastFill
	}
	return meta
}

// roundAmount rounds half to even at two places
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(amountPlaces)
}
