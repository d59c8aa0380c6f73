package domain

import "errors"

// Domain errors
var (
	ErrInvalidSchedule     = errors.New("invalid schedule")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDueDay       = errors.New("due day must be between 1 and 31")
	ErrInvalidFuelInterval = errors.New("fuel interval must be greater than zero")
	ErrInvalidDate         = errors.New("invalid date")
)

// Validation constants
const (
	MaxPaymentNameLength = 255
)
