// Package middleware provides Echo middleware for inventory-tracker.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route, so scanners
// probing random URLs cannot grow the label set.
const unmatchedRoute = "unmatched"

// probeGauges are recorded as up/down gauges instead of request metrics.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// by route template. /metrics is not recorded and the probes only set their
// gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			status := responseStatus(c, err)

			if gauge, ok := probeGauges[route]; ok {
				gauge.Set(boolGauge(status >= 200 && status < 300))
				return err
			}

			if route == "" || errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
				route = unmatchedRoute
			}
			method := c.Request().Method
			code := strconv.Itoa(status)

			metrics.HTTPRequestDuration.
				WithLabelValues(method, route, code).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, route, code).
				Inc()

			return err
		}
	}
}

// responseStatus is the status the client will see. An error returned
// before anything was written is rendered later by echo's error handler.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func boolGauge(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
