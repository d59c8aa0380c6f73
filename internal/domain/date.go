package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Date is a calendar date anchored at midnight UTC.
// The zero value is not a valid date; check with IsZero.
type Date struct {
	t time.Time
}

// NewDate returns the calendar date for year, month and day.
// Out-of-range values are normalized the way time.Date does.
func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the UTC calendar date containing t
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// AddDays advances the date by n calendar days, rolling over months and years
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysSince returns the number of whole calendar days from other to d.
// The result is negative when other is after d.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / day)
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.t.Day()
}

// Month returns the month of the year
func (d Date) Month() time.Month {
	return d.t.Month()
}

// Year returns the year
func (d Date) Year() int {
	return d.t.Year()
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
