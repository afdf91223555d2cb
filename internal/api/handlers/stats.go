package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

const recentActivityWindow = 24 * time.Hour

// StatsProvider defines the store methods required by the stats handler.
type StatsProvider interface {
	GetInventoryStats(ctx context.Context, since time.Time) (*domain.InventoryStats, error)
}

// StatsHandler serves the inventory dashboard statistics.
type StatsHandler struct {
	store StatsProvider
	now   func() time.Time
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s StatsProvider) *StatsHandler {
	return &StatsHandler{store: s, now: time.Now}
}

// GetStatsOutput is the response body for inventory statistics.
type GetStatsOutput struct {
	Body *domain.InventoryStats
}

// GetStats returns tracker-wide counts, score averages, per-store health and
// the last 24 hours of check activity.
func (h *StatsHandler) GetStats(ctx context.Context, _ *struct{}) (*GetStatsOutput, error) {
	stats, err := h.store.GetInventoryStats(ctx, h.now().Add(-recentActivityWindow))
	if err != nil {
		return nil, huma.Error500InternalServerError("computing statistics failed: " + err.Error())
	}
	if stats.Stores == nil {
		stats.Stores = []domain.StoreStats{}
	}
	return &GetStatsOutput{Body: stats}, nil
}

// RegisterStatsRoutes registers the statistics endpoint with the Huma API.
func RegisterStatsRoutes(api huma.API, h *StatsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-inventory-statistics",
		Method:      http.MethodGet,
		Path:        "/api/v1/inventory/statistics",
		Summary:     "Get inventory statistics",
		Description: "Returns availability counts, score averages, per-store health " +
			"and check activity over the last 24 hours.",
		Tags:   []string{"inventory"},
		Errors: []int{http.StatusInternalServerError},
	}, h.GetStats)
}
