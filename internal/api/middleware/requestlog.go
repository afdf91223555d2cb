package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// probePaths are logged on their first success only. Failures are always
// logged at warn.
var probePaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// routeParams are copied into the request log when the matched route has
// them, so a failed live check can be traced to its product or store.
var routeParams = []struct{ param, key string }{
	{"uuid", "product_uuid"},
	{"id", "store_id"},
	{"job_name", "job"},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Server errors are logged at error.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu   sync.Mutex
		seen = map[string]bool{}
	)

	// firstSuccess reports whether this is the first successful probe of path.
	firstSuccess := func(path string) bool {
		mu.Lock()
		defer mu.Unlock()
		if seen[path] {
			return false
		}
		seen[path] = true
		return true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := responseStatus(c, err)
			level := slog.LevelInfo

			if _, probe := probePaths[path]; probe {
				if status < http.StatusBadRequest && !firstSuccess(path) {
					return err
				}
				if status >= http.StatusBadRequest {
					level = slog.LevelWarn
				}
			}
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			for _, rp := range routeParams {
				if v := c.Param(rp.param); v != "" {
					attrs = append(attrs, rp.key, v)
				}
			}
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}

			log.Log(c.Request().Context(), level, "request", attrs...)

			return err
		}
	}
}
