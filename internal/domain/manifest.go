package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueItem is an obligation materialized for a specific date
type DueItem struct {
	Name   string
	Amount decimal.Decimal
}

// DaySummary lists everything due on one projected date
type DaySummary struct {
	Offset int // days from today, starting at 1
	Date   Date
	Total  decimal.Decimal
	Items  []DueItem
}

// FuelMeta summarizes the fuel settings a manifest was built with
type FuelMeta struct {
	Enabled      bool
	CostPerFill  decimal.Decimal
	IntervalDays int
	LastFill     *Date
}

// Manifest is the projection of due items over the horizon
type Manifest struct {
	GeneratedAt time.Time
	Currency    string
	Fuel        FuelMeta
	Days        []DaySummary
}

// WindowTotal sums the totals of all projected days
func (m *Manifest) WindowTotal() decimal.Decimal {
	total := decimal.Zero
	for _, d := range m.Days {
		total = total.Add(d.Total)
	}
	return total
}

// ItemCount returns the number of due items across the window
func (m *Manifest) ItemCount() int {
	n := 0
	for _, d := range m.Days {
		n += len(d.Items)
	}
	return n
}
