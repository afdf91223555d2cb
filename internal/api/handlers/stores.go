package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/inventory-tracker/internal/metrics"
	"github.com/donaldgifford/inventory-tracker/internal/store"
	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// StoresProvider defines the store methods required by the stores handler.
type StoresProvider interface {
	ListStoreConfigs(ctx context.Context) ([]domain.StoreAPIConfig, error)
	UpdateStoreHealth(ctx context.Context, storeID int64, fn store.HealthMutator) (*domain.StoreAPIConfig, error)
}

// StoresHandler serves store check policies and their breaker state.
type StoresHandler struct {
	store StoresProvider
}

// NewStoresHandler creates a new StoresHandler.
func NewStoresHandler(s StoresProvider) *StoresHandler {
	return &StoresHandler{store: s}
}

// ListStoresOutput is the response body for listing store configs.
type ListStoresOutput struct {
	Body []domain.StoreAPIConfig
}

// StoreIDInput identifies a store.
type StoreIDInput struct {
	ID int64 `path:"id" doc:"Store ID"`
}

// ReactivateStoreOutput is the response body for a breaker reset.
type ReactivateStoreOutput struct {
	Body *domain.StoreAPIConfig
}

// ListStores returns every store's check policy and health.
func (h *StoresHandler) ListStores(ctx context.Context, _ *struct{}) (*ListStoresOutput, error) {
	cfgs, err := h.store.ListStoreConfigs(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing stores failed: " + err.Error())
	}
	if cfgs == nil {
		cfgs = []domain.StoreAPIConfig{}
	}
	return &ListStoresOutput{Body: cfgs}, nil
}

// ReactivateStore closes a store's breaker: it becomes active again with a
// zero failure streak.
func (h *StoresHandler) ReactivateStore(ctx context.Context, input *StoreIDInput) (*ReactivateStoreOutput, error) {
	wasActive := false
	cfg, err := h.store.UpdateStoreHealth(ctx, input.ID, func(c *domain.StoreAPIConfig) error {
		wasActive = c.IsActive
		c.Reactivate()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("store not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("reactivating store failed: " + err.Error())
	}

	metrics.StoreConsecutiveFailures.WithLabelValues(strconv.FormatInt(cfg.StoreID, 10)).Set(0)
	if !wasActive {
		metrics.ActiveStores.Inc()
	}

	return &ReactivateStoreOutput{Body: cfg}, nil
}

// RegisterStoreRoutes registers store endpoints with the Huma API.
func RegisterStoreRoutes(api huma.API, h *StoresHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-stores",
		Method:      http.MethodGet,
		Path:        "/api/v1/stores",
		Summary:     "List store check policies",
		Description: "Returns each store's check policy, active flag and failure streak.",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListStores)

	huma.Register(api, huma.Operation{
		OperationID: "reactivate-store",
		Method:      http.MethodPost,
		Path:        "/api/v1/stores/{id}/reactivate",
		Summary:     "Reactivate a store",
		Description: "Resets the failure streak of a store deactivated after repeated failures.",
		Tags:        []string{"stores"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.ReactivateStore)
}
