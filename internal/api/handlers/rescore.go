package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Rescorer recomputes stored purchaseability scores.
type Rescorer interface {
	RescoreProducts(ctx context.Context, productIDs []int64) (int, error)
}

// RescoreHandler handles re-scoring requests.
type RescoreHandler struct {
	rescorer Rescorer
}

// NewRescoreHandler creates a new RescoreHandler.
func NewRescoreHandler(r Rescorer) *RescoreHandler {
	return &RescoreHandler{rescorer: r}
}

// RescoreInput is the request body for re-scoring.
type RescoreInput struct {
	Body struct {
		ProductIDs []int64 `json:"product_ids" minItems:"1" maxItems:"500" doc:"Products to re-score"`
	}
}

// RescoreOutput is the response body for re-scoring.
type RescoreOutput struct {
	Body struct {
		Scored int `json:"scored" example:"12" doc:"Number of products re-scored"`
	}
}

// Rescore recomputes scores from stored status and check history. Products
// never checked are skipped.
func (h *RescoreHandler) Rescore(ctx context.Context, input *RescoreInput) (*RescoreOutput, error) {
	scored, err := h.rescorer.RescoreProducts(ctx, input.Body.ProductIDs)
	if err != nil {
		return nil, huma.Error500InternalServerError("rescore failed: " + err.Error())
	}

	resp := &RescoreOutput{}
	resp.Body.Scored = scored
	return resp, nil
}

// RegisterRescoreRoutes registers the rescore endpoint with the Huma API.
func RegisterRescoreRoutes(api huma.API, h *RescoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "rescore-products",
		Method:      http.MethodPost,
		Path:        "/api/v1/scores/rescore",
		Summary:     "Re-score products",
		Description: "Recalculates purchaseability scores using the current weights and check history.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Rescore)
}
