package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
)

func newScheduleCommand(schedulePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "List the configured payments and fuel settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := loadSchedule(*schedulePath)
			if err != nil {
				return err
			}
			return writeSchedule(cmd.OutOrStdout(), sched)
		},
	}
}

func writeSchedule(w io.Writer, s *domain.Schedule) error {
	payments := make([]domain.PaymentDefinition, len(s.Payments))
	copy(payments, s.Payments)

	// by day of month, unscheduled last, configuration order within a day
	sort.SliceStable(payments, func(i, j int) bool {
		di, oki := payments[i].DueDay.Day()
		dj, okj := payments[j].DueDay.Day()
		if oki != okj {
			return oki
		}
		return di < dj
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Day", "Payment", "Amount")

	for _, p := range payments {
		day := "-"
		if d, ok := p.DueDay.Day(); ok {
			day = strconv.Itoa(d)
		}
		t.Row(day, p.Name, formatGBP(p.Amount))
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d payments", len(payments)))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, describeFuel(s.Fuel))
	return err
}

func describeFuel(f domain.FuelConfig) string {
	if !f.Enabled {
		return "Fuel: disabled"
	}
	lastFill := "not set (no fuel reminders)"
	if f.LastFill != nil {
		lastFill = f.LastFill.String()
	}
	return fmt.Sprintf("Fuel: %s every %d days, last fill %s", formatGBP(f.CostPerFill), f.IntervalDays, lastFill)
}
