package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
} //@name ProblemDetails

// Error types
const (
	ErrorTypeNotFound         = "https://fortuna.app/errors/not-found"
	ErrorTypeMethodNotAllowed = "https://fortuna.app/errors/method-not-allowed"
	ErrorTypeRateLimit        = "https://fortuna.app/errors/rate-limit"
	ErrorTypeInternal         = "https://fortuna.app/errors/internal"
	ErrorTypeHTTP             = "https://fortuna.app/errors/http"
)

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return newProblem(c, http.StatusNotFound, ErrorTypeNotFound, detail)
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return newProblem(c, http.StatusInternalServerError, ErrorTypeInternal, detail)
}

func newProblem(c echo.Context, status int, errorType, detail string) error {
	return c.JSON(status, ProblemDetails{
		Type:     errorType,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// HTTPErrorHandler renders errors that escape handlers as Problem Details
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled error")
		if respErr := NewInternalError(c, "An unexpected error occurred"); respErr != nil {
			log.Error().Err(respErr).Msg("Failed to write error response")
		}
		return
	}

	errorType := ErrorTypeHTTP
	switch he.Code {
	case http.StatusNotFound:
		errorType = ErrorTypeNotFound
	case http.StatusMethodNotAllowed:
		errorType = ErrorTypeMethodNotAllowed
	case http.StatusTooManyRequests:
		errorType = ErrorTypeRateLimit
	case http.StatusInternalServerError:
		errorType = ErrorTypeInternal
	}

	detail := ""
	if msg, ok := he.Message.(string); ok && msg != http.StatusText(he.Code) {
		detail = msg
	}

	var respErr error
	if c.Request().Method == http.MethodHead {
		respErr = c.NoContent(he.Code)
	} else {
		respErr = newProblem(c, he.Code, errorType, detail)
	}
	if respErr != nil {
		log.Error().Err(respErr).Msg("Failed to write error response")
	}
}
