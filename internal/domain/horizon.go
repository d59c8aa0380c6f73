package domain

import "strings"

// Horizon bounds, in days after today
const (
	DefaultHorizonDays = 7
	MinHorizonDays     = 1
	MaxHorizonDays     = 14
)

// ClampHorizon forces n into [MinHorizonDays, MaxHorizonDays]
func ClampHorizon(n int) int {
	if n < MinHorizonDays {
		return MinHorizonDays
	}
	if n > MaxHorizonDays {
		return MaxHorizonDays
	}
	return n
}

// ParseHorizon reads a base-10 integer from the start of raw, ignoring any
// trailing text ("12abc" is 12). Input with no leading digits yields
// DefaultHorizonDays. The result is always clamped.
func ParseHorizon(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s); digits++ {
		c := s[digits]
		if c < '0' || c > '9' {
			break
		}
		// anything past the max clamps anyway; stop before overflow
		if n <= MaxHorizonDays {
			n = n*10 + int(c-'0')
		}
	}
	if digits == 0 {
		return DefaultHorizonDays
	}
	if negative {
		n = -n
	}
	return ClampHorizon(n)
}
