package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDueDayMatches(t *testing.T) {
	tests := []struct {
		name   string
		dueDay DueDay
		date   Date
		want   bool
	}{
		{"same day of month", ScheduledOn(10), NewDate(2026, 1, 10), true},
		{"different day", ScheduledOn(10), NewDate(2026, 1, 11), false},
		{"first of next month", ScheduledOn(1), NewDate(2026, 2, 1), true},
		{"unscheduled never matches", Unscheduled(), NewDate(2026, 1, 1), false},
		{"day 31 in a 30 day month", ScheduledOn(31), NewDate(2026, 4, 30), false},
		{"day 29 in a non leap february", ScheduledOn(29), NewDate(2026, 3, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dueDay.Matches(tt.date); got != tt.want {
				t.Errorf("%s.Matches(%s) = %v, want %v", tt.dueDay, tt.date, got, tt.want)
			}
		})
	}
}

func TestDueDayZeroValueIsUnscheduled(t *testing.T) {
	var d DueDay
	if d.IsScheduled() {
		t.Error("Expected zero DueDay to be unscheduled")
	}
	if _, ok := d.Day(); ok {
		t.Error("Expected Day() to report no scheduled day")
	}
	if d.String() != "unscheduled" {
		t.Errorf("Expected 'unscheduled', got %s", d.String())
	}
}

func TestDueDayValidate(t *testing.T) {
	for _, day := range []int{1, 15, 31} {
		if err := ScheduledOn(day).Validate(); err != nil {
			t.Errorf("ScheduledOn(%d).Validate() = %v, want nil", day, err)
		}
	}
	for _, day := range []int{-1, 32} {
		if err := ScheduledOn(day).Validate(); !errors.Is(err, ErrInvalidDueDay) {
			t.Errorf("ScheduledOn(%d).Validate() = %v, want ErrInvalidDueDay", day, err)
		}
	}
}

func TestFuelDueOn(t *testing.T) {
	lastFill := NewDate(2026, 1, 11)
	fuel := FuelConfig{
		Enabled:      true,
		CostPerFill:  decimal.NewFromInt(47),
		IntervalDays: 4,
		LastFill:     &lastFill,
	}

	due := map[string]bool{
		"2026-01-11": false, // the fill itself
		"2026-01-12": false,
		"2026-01-13": false,
		"2026-01-14": false,
		"2026-01-15": true,
		"2026-01-19": true,
		"2026-01-23": true,
		"2026-02-04": true, // 24 days on
		"2026-01-07": false, // before the anchor
	}

	for s, want := range due {
		date, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%s): %v", s, err)
		}
		if got := fuel.DueOn(date); got != want {
			t.Errorf("DueOn(%s) = %v, want %v", s, got, want)
		}
	}
}

func TestFuelInert(t *testing.T) {
	lastFill := NewDate(2026, 1, 11)
	date := NewDate(2026, 1, 15)

	disabled := FuelConfig{Enabled: false, IntervalDays: 4, LastFill: &lastFill}
	if disabled.DueOn(date) {
		t.Error("Disabled fuel should never be due")
	}

	noAnchor := FuelConfig{Enabled: true, IntervalDays: 4}
	if noAnchor.DueOn(date) {
		t.Error("Fuel without last fill should never be due")
	}
	if noAnchor.Active() {
		t.Error("Fuel without last fill should not be active")
	}
}

func TestScheduleValidate(t *testing.T) {
	valid := Schedule{
		Payments: []PaymentDefinition{
			{Name: "Rent", Amount: decimal.RequireFromString("407.56"), DueDay: ScheduledOn(8)},
			{Name: "Food (budget)", Amount: decimal.NewFromInt(200), DueDay: Unscheduled()},
		},
		Fuel: FuelConfig{Enabled: true, CostPerFill: decimal.NewFromInt(47), IntervalDays: 4},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected valid schedule, got %v", err)
	}

	tests := []struct {
		name    string
		payment PaymentDefinition
		fuel    FuelConfig
		wantErr error
	}{
		{
			name:    "missing name",
			payment: PaymentDefinition{Amount: decimal.NewFromInt(1), DueDay: ScheduledOn(1)},
			wantErr: ErrNameRequired,
		},
		{
			name:    "long name",
			payment: PaymentDefinition{Name: strings.Repeat("x", MaxPaymentNameLength+1), DueDay: ScheduledOn(1)},
			wantErr: ErrNameTooLong,
		},
		{
			name:    "negative amount",
			payment: PaymentDefinition{Name: "Refund", Amount: decimal.NewFromInt(-5), DueDay: ScheduledOn(1)},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "bad due day",
			payment: PaymentDefinition{Name: "Gym", Amount: decimal.NewFromInt(26), DueDay: ScheduledOn(40)},
			wantErr: ErrInvalidDueDay,
		},
		{
			name:    "zero fuel interval",
			payment: PaymentDefinition{Name: "Gym", Amount: decimal.NewFromInt(26), DueDay: ScheduledOn(3)},
			fuel:    FuelConfig{Enabled: true, CostPerFill: decimal.NewFromInt(47)},
			wantErr: ErrInvalidFuelInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Schedule{Payments: []PaymentDefinition{tt.payment}, Fuel: tt.fuel}
			err := s.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidSchedule) {
				t.Errorf("Validate() = %v, want wrapped ErrInvalidSchedule", err)
			}
		})
	}
}

func TestPaymentsDueOnKeepsConfigurationOrder(t *testing.T) {
	s := Schedule{
		Payments: []PaymentDefinition{
			{Name: "AO/NewDay", Amount: decimal.RequireFromString("197.35"), DueDay: ScheduledOn(10)},
			{Name: "Your phone", Amount: decimal.NewFromInt(15), DueDay: ScheduledOn(11)},
			{Name: "Sofa", Amount: decimal.RequireFromString("76.5"), DueDay: ScheduledOn(10)},
		},
	}

	due := s.PaymentsDueOn(NewDate(2026, 3, 10))
	if len(due) != 2 {
		t.Fatalf("Expected 2 payments, got %d", len(due))
	}
	if due[0].Name != "AO/NewDay" || due[1].Name != "Sofa" {
		t.Errorf("Expected [AO/NewDay Sofa], got [%s %s]", due[0].Name, due[1].Name)
	}
}
