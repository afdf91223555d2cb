// Package handlers implements HTTP handlers for the inventory-tracker API.
package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger is anything readiness depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	deps  map[string]Pinger
	order []string
}

// NewHealthHandler creates a HealthHandler whose readiness depends on the
// store. More dependencies are added with WithDependency.
func NewHealthHandler(db Pinger) *HealthHandler {
	return (&HealthHandler{deps: map[string]Pinger{}}).WithDependency("database", db)
}

// WithDependency adds a named readiness dependency. A nil pinger is ignored.
func (h *HealthHandler) WithDependency(name string, p Pinger) *HealthHandler {
	if p == nil {
		return h
	}
	if _, ok := h.deps[name]; !ok {
		h.order = append(h.order, name)
	}
	h.deps[name] = p
	return h
}

// StatusResponse is the liveness body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadyResponse reports readiness and any failing dependencies.
type ReadyResponse struct {
	Status string            `json:"status"           example:"ready"`
	Failed map[string]string `json:"failed,omitempty"`
}

// Healthz returns 200 if the process is running.
//
// @Summary Liveness check
// @Description Returns 200 if the process is running.
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /healthz [get]
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 if every dependency is reachable, 503 otherwise.
//
// @Summary Readiness check
// @Description Returns 200 if the database and lock backend are reachable, 503 otherwise.
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx := c.Request().Context()

	var failed map[string]string
	for _, name := range h.order {
		if err := h.deps[name].Ping(ctx); err != nil {
			if failed == nil {
				failed = map[string]string{}
			}
			failed[name] = err.Error()
		}
	}

	if failed != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			ReadyResponse{Status: "unavailable", Failed: failed},
		)
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
}
