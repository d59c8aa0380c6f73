package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/buildinfo"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/dafibh/fortuna/fortuna-reminders/internal/schedule"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var schedulePath string

	rootCmd := &cobra.Command{
		Use:     "reminders",
		Short:   "Upcoming recurring bill payments",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&schedulePath, "schedule", "", "TOML schedule file (default: compiled-in schedule)")

	rootCmd.AddCommand(newDueCommand(&schedulePath))
	rootCmd.AddCommand(newScheduleCommand(&schedulePath))

	return rootCmd
}

func loadSchedule(path string) (*domain.Schedule, error) {
	s, err := schedule.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	return s, nil
}

func formatGBP(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}
