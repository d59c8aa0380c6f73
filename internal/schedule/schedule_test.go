package schedule

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dafibh/fortuna/fortuna-reminders/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Len(t, s.Payments, 25)
	assert.Equal(t, "Apple storage", s.Payments[0].Name)
	assert.Equal(t, "8.99", s.Payments[0].Amount.String())
	day, ok := s.Payments[0].DueDay.Day()
	assert.True(t, ok)
	assert.Equal(t, 1, day)

	// Lifestyle entries carry no date
	last := s.Payments[len(s.Payments)-1]
	assert.Equal(t, "Food (budget)", last.Name)
	assert.False(t, last.DueDay.IsScheduled())

	assert.True(t, s.Fuel.Enabled)
	assert.Equal(t, "47", s.Fuel.CostPerFill.String())
	assert.Equal(t, 4, s.Fuel.IntervalDays)
	assert.Nil(t, s.Fuel.LastFill)
}

func TestDefault_DuplicateDaysKept(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	due := s.PaymentsDueOn(domain.NewDate(2026, 3, 10))
	require.Len(t, due, 2)
	assert.Equal(t, "AO/NewDay", due[0].Name)
	assert.Equal(t, "Sofa", due[1].Name)
}

func TestParse(t *testing.T) {
	data := []byte(`
[fuel]
enabled = true
cost = "52.10"
interval_days = 5
last_fill = "2026-01-11"

[[payments]]
name = "Rent"
amount = "407.56"
day = 8

[[payments]]
name = "Holiday fund"
amount = "50"
day = 0
`)

	s, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, s.Payments, 2)
	assert.True(t, s.Payments[0].DueDay.Matches(domain.NewDate(2026, 2, 8)))
	assert.False(t, s.Payments[1].DueDay.IsScheduled())
	require.NotNil(t, s.Fuel.LastFill)
	assert.Equal(t, "2026-01-11", s.Fuel.LastFill.String())
	assert.Equal(t, "52.1", s.Fuel.CostPerFill.String())
	assert.Equal(t, 5, s.Fuel.IntervalDays)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "malformed toml",
			data:    "[[payments]\nname = ",
			wantErr: domain.ErrInvalidSchedule,
		},
		{
			name:    "bad amount",
			data:    "[[payments]]\nname = \"Gas\"\namount = \"lots\"\nday = 27\n",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "day out of range",
			data:    "[[payments]]\nname = \"Gas\"\namount = \"65.98\"\nday = 32\n",
			wantErr: domain.ErrInvalidDueDay,
		},
		{
			name:    "missing name",
			data:    "[[payments]]\namount = \"65.98\"\nday = 27\n",
			wantErr: domain.ErrNameRequired,
		},
		{
			name:    "bad last fill",
			data:    "[fuel]\nenabled = true\ncost = \"47\"\ninterval_days = 4\nlast_fill = \"11/01/2026\"\n",
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "zero interval",
			data:    "[fuel]\nenabled = true\ncost = \"47\"\ninterval_days = 0\n",
			wantErr: domain.ErrInvalidFuelInterval,
		},
		{
			name:    "unknown key",
			data:    "[[payments]]\nname = \"Gas\"\namount = \"65.98\"\ndue = 27\n",
			wantErr: domain.ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedule.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[payments]]\nname = \"Gym\"\namount = \"26\"\nday = 3\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Payments, 1)
	assert.Equal(t, "Gym", s.Payments[0].Name)
	assert.False(t, s.Fuel.Enabled)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fromDefault, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, fromDefault.Payments)
}
