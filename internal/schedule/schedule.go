// Package schedule loads the recurring payment schedule from TOML.
//
// A default schedule is compiled into the binary; maintainers edit
// default.toml and rebuild. A file on disk can replace it at startup.
package schedule

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/shopspring/decimal"
)

//go:embed default.toml
var defaultSchedule []byte

type fileSchedule struct {
	Fuel     fileFuel      `toml:"fuel"`
	Payments []filePayment `toml:"payments"`
}

type fileFuel struct {
	Enabled      bool   `toml:"enabled"`
	Cost         string `toml:"cost"`
	IntervalDays int    `toml:"interval_days"`
	LastFill     string `toml:"last_fill"`
}

type filePayment struct {
	Name   string `toml:"name"`
	Amount string `toml:"amount"`
	Day    int    `toml:"day"`
}

// Default returns the compiled-in schedule
func Default() (*domain.Schedule, error) {
	return Parse(defaultSchedule)
}

// Load reads the schedule at path, or the compiled-in one when path is empty
func Load(path string) (*domain.Schedule, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a TOML schedule
func Parse(data []byte) (*domain.Schedule, error) {
	var raw fileSchedule
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidSchedule, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", domain.ErrInvalidSchedule, undecoded)
	}

	s := &domain.Schedule{
		Payments: make([]domain.PaymentDefinition, 0, len(raw.Payments)),
	}

	for i, p := range raw.Payments {
		amount, err := parseAmount(p.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: payment %d (%s): %w", domain.ErrInvalidSchedule, i+1, p.Name, err)
		}
		dueDay := domain.Unscheduled()
		if p.Day != 0 {
			dueDay = domain.ScheduledOn(p.Day)
		}
		s.Payments = append(s.Payments, domain.PaymentDefinition{
			Name:   strings.TrimSpace(p.Name),
			Amount: amount,
			DueDay: dueDay,
		})
	}

	fuel, err := parseFuel(raw.Fuel)
	if err != nil {
		return nil, fmt.Errorf("%w: fuel: %w", domain.ErrInvalidSchedule, err)
	}
	s.Fuel = fuel

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parseFuel(f fileFuel) (domain.FuelConfig, error) {
	cfg := domain.FuelConfig{
		Enabled:      f.Enabled,
		IntervalDays: f.IntervalDays,
	}
	if f.Cost != "" {
		cost, err := parseAmount(f.Cost)
		if err != nil {
			return cfg, err
		}
		cfg.CostPerFill = cost
	}
	if f.LastFill != "" {
		lastFill, err := domain.ParseDate(f.LastFill)
		if err != nil {
			return cfg, err
		}
		cfg.LastFill = &lastFill
	}
	return cfg, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return amount, nil
}
