package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is the only currency amounts are expressed in
const Currency = "GBP"

// FuelItemName is the due-item name used for estimated fuel purchases
const FuelItemName = "Fuel (est)"

// DueDay is the day of the month a payment falls due, or unscheduled.
// The zero value is unscheduled.
type DueDay struct {
	day int
}

// ScheduledOn returns a DueDay for the given day of the month.
// Days outside 1..31 are rejected by Validate.
func ScheduledOn(dayOfMonth int) DueDay {
	return DueDay{day: dayOfMonth}
}

// Unscheduled returns a DueDay that never matches any date
func Unscheduled() DueDay {
	return DueDay{}
}

// Day returns the scheduled day of the month and whether one is set
func (d DueDay) Day() (int, bool) {
	return d.day, d.day != 0
}

// IsScheduled reports whether the due day is tied to a calendar day
func (d DueDay) IsScheduled() bool {
	return d.day != 0
}

// Matches reports whether the payment falls due on date.
// A day that does not exist in date's month (e.g. 31 in April) never matches.
func (d DueDay) Matches(date Date) bool {
	return d.day != 0 && date.Day() == d.day
}

func (d DueDay) Validate() error {
	if d.day == 0 {
		return nil
	}
	if d.day < 1 || d.day > 31 {
		return fmt.Errorf("%w: got %d", ErrInvalidDueDay, d.day)
	}
	return nil
}

func (d DueDay) String() string {
	if d.day == 0 {
		return "unscheduled"
	}
	return fmt.Sprintf("day %d", d.day)
}

// PaymentDefinition is a fixed monthly payment
type PaymentDefinition struct {
	Name   string
	Amount decimal.Decimal
	DueDay DueDay
}

func (p PaymentDefinition) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if len(p.Name) > MaxPaymentNameLength {
		return fmt.Errorf("%w: %q", ErrNameTooLong, p.Name)
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("%s: %w", p.Name, ErrNegativeAmount)
	}
	if err := p.DueDay.Validate(); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	return nil
}

// FuelConfig describes an estimated purchase recurring every IntervalDays
// days from LastFill. It is inert while LastFill is nil.
type FuelConfig struct {
	Enabled      bool
	CostPerFill  decimal.Decimal
	IntervalDays int
	LastFill     *Date
}

// Active reports whether fuel reminders can be produced at all
func (f FuelConfig) Active() bool {
	return f.Enabled && f.LastFill != nil && f.IntervalDays > 0
}

// DueOn reports whether a fill is expected on date. The day count is taken
// from the fixed LastFill anchor, so fills recur indefinitely.
func (f FuelConfig) DueOn(date Date) bool {
	if !f.Active() {
		return false
	}
	diff := date.DaysSince(*f.LastFill)
	return diff > 0 && diff%f.IntervalDays == 0
}

func (f FuelConfig) Validate() error {
	if !f.Enabled {
		return nil
	}
	if f.IntervalDays <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidFuelInterval, f.IntervalDays)
	}
	if f.CostPerFill.IsNegative() {
		return fmt.Errorf("fuel: %w", ErrNegativeAmount)
	}
	return nil
}

// Schedule is the immutable set of recurring obligations
type Schedule struct {
	Payments []PaymentDefinition
	Fuel     FuelConfig
}

// Validate checks every payment and the fuel settings
func (s *Schedule) Validate() error {
	for i, p := range s.Payments {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%w: payment %d: %w", ErrInvalidSchedule, i+1, err)
		}
	}
	if err := s.Fuel.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	return nil
}

// PaymentsDueOn returns the payments matching date in configuration order
func (s *Schedule) PaymentsDueOn(date Date) []PaymentDefinition {
	var due []PaymentDefinition
	for _, p := range s.Payments {
		if p.DueDay.Matches(date) {
			due = append(due, p)
		}
	}
	return due
}
