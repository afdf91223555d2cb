package client

import (
	"context"
	"strconv"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// ListStores returns every store's check policy and health.
func (c *Client) ListStores(ctx context.Context) ([]domain.StoreAPIConfig, error) {
	var cfgs []domain.StoreAPIConfig
	if err := c.get(ctx, "/api/v1/stores", &cfgs); err != nil {
		return nil, err
	}
	return cfgs, nil
}

// ReactivateStore resets a deactivated store's failure streak.
func (c *Client) ReactivateStore(ctx context.Context, storeID int64) (*domain.StoreAPIConfig, error) {
	var cfg domain.StoreAPIConfig
	path := "/api/v1/stores/" + strconv.FormatInt(storeID, 10) + "/reactivate"
	if err := c.post(ctx, path, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
