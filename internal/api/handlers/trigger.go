package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inventory-tracker/internal/engine"
)

// InventoryRunner defines the interface for triggering a scheduled check run.
type InventoryRunner interface {
	RunInventoryCheck(ctx context.Context) (*engine.RunSummary, error)
}

// RunCheckHandler handles manual scheduled-check trigger requests.
type RunCheckHandler struct {
	runner InventoryRunner
}

// NewRunCheckHandler creates a new RunCheckHandler.
func NewRunCheckHandler(r InventoryRunner) *RunCheckHandler {
	return &RunCheckHandler{runner: r}
}

// RunCheckOutput is the response body for the run endpoint.
type RunCheckOutput struct {
	Body struct {
		Status  string             `json:"status"  example:"inventory check completed" doc:"Run status"`
		Summary *engine.RunSummary `json:"summary"`
	}
}

// Run performs one priority-then-routine check run now.
func (h *RunCheckHandler) Run(ctx context.Context, _ *struct{}) (*RunCheckOutput, error) {
	sum, err := h.runner.RunInventoryCheck(ctx)
	if errors.Is(err, engine.ErrJobLocked) {
		return nil, huma.Error409Conflict("an inventory check is already running")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("inventory check failed: " + err.Error())
	}

	resp := &RunCheckOutput{}
	resp.Body.Status = "inventory check completed"
	resp.Body.Summary = sum
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, h *RunCheckHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "run-inventory-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/inventory/run",
		Summary:     "Trigger a scheduled check run",
		Description: "Checks high-priority products, then stale ones, exactly as the " +
			"scheduler does. Returns 409 while another run holds the job lock.",
		Tags:   []string{"scheduler"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Run)
}
