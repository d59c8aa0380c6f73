package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/handler"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/service"
)

func newDueCommand(schedulePath *string) *cobra.Command {
	var days int
	var today string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show payments due over the next days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if today != "" {
				d, err := domain.ParseDate(today)
				if err != nil {
					return fmt.Errorf("--today: %w", err)
				}
				now = d.Time()
			}

			sched, err := loadSchedule(*schedulePath)
			if err != nil {
				return err
			}

			manifest := service.NewReminderService(sched).Project(days, now)
			if asJSON {
				return writeManifestJSON(cmd.OutOrStdout(), manifest)
			}
			return writeManifestText(cmd.OutOrStdout(), manifest, domain.DateOf(now))
		},
	}

	cmd.Flags().IntVar(&days, "days", domain.DefaultHorizonDays, "number of days to look ahead (1-14)")
	cmd.Flags().StringVar(&today, "today", "", "date to project from, YYYY-MM-DD (default: today in UTC)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the same JSON the API returns")

	return cmd
}

func writeManifestJSON(w io.Writer, m *domain.Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(handler.ToManifestResponse(m))
}

func writeManifestText(w io.Writer, m *domain.Manifest, today domain.Date) error {
	title := fmt.Sprintf("Due in the next %d days (from %s)", len(m.Days), today)
	if _, err := fmt.Fprintln(w, headerStyle.Render(title)); err != nil {
		return err
	}

	if m.ItemCount() == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("Nothing due."))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("In", "Date", "Item", "Amount")

	for _, day := range m.Days {
		for _, item := range day.Items {
			t.Row(
				strconv.Itoa(day.Offset),
				day.Date.Weekday().String()[:3]+" "+day.Date.String(),
				item.Name,
				formatGBP(item.Amount),
			)
		}
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total: %s\n", formatGBP(m.WindowTotal()))
	return err
}
