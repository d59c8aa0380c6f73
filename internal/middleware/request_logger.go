package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DurationRecorder receives the latency of every handled request
type DurationRecorder interface {
	RecordRequestDuration(route string, status int, d time.Duration)
}

// RequestLogger returns a middleware that logs requests using zerolog and,
// when recorder is non-nil, reports their duration
func RequestLogger(recorder DurationRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)

			log.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", latency).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			if recorder != nil {
				route := c.Path()
				if route == "" {
					route = "unmatched"
				}
				recorder.RecordRequestDuration(route, res.Status, latency)
			}

			return nil
		}
	}
}
