package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// ProductCheck is one live check result with product context.
type ProductCheck struct {
	domain.CheckResult
	ProductName string `json:"product_name"`
	BrandName   string `json:"brand_name"`
	StoreName   string `json:"store_name"`
	ProductURL  string `json:"product_url"`
}

// CheckSummary aggregates a multi-product check.
type CheckSummary struct {
	TotalChecked     int     `json:"total_checked"`
	AvailableCount   int     `json:"available_count"`
	UnavailableCount int     `json:"unavailable_count"`
	AvailabilityRate float64 `json:"availability_rate"`
}

// CheckProductsResponse is the result of a multi-product check.
type CheckProductsResponse struct {
	Results []ProductCheck `json:"results"`
	Summary CheckSummary   `json:"summary"`
	Errors  []string       `json:"errors,omitempty"`
}

// StylingResponse is the result of a styling set check. Alternatives are
// keyed by product UUID.
type StylingResponse struct {
	Results          []ProductCheck                         `json:"results"`
	Alternatives     map[string][]domain.AlternativeProduct `json:"alternatives"`
	TotalChecked     int                                    `json:"total_checked"`
	AvailableCount   int                                    `json:"available_count"`
	UnavailableCount int                                    `json:"unavailable_count"`
	Errors           []string                               `json:"errors,omitempty"`
}

// InventoryStatus is the stored inventory state of a product.
type InventoryStatus struct {
	ProductUUID                 string             `json:"product_uuid"`
	ProductName                 string             `json:"product_name"`
	StoreName                   string             `json:"store_name"`
	StockStatus                 domain.StockStatus `json:"stock_status"`
	IsAvailable                 bool               `json:"is_available"`
	StockQuantity               *int               `json:"stock_quantity"`
	CurrentPrice                *float64           `json:"current_price"`
	PriceChanged                bool               `json:"price_changed"`
	LastChecked                 *time.Time         `json:"last_checked"`
	IsRecentlyChecked           bool               `json:"is_recently_checked"`
	NeedsUrgentCheck            bool               `json:"needs_urgent_check"`
	NeedsCheck                  bool               `json:"needs_check"`
	ConsecutiveUnavailableCount int                `json:"consecutive_unavailable_count"`
}

// Score is a product's purchaseability score with derived flags.
type Score struct {
	ProductUUID string `json:"product_uuid"`
	domain.PurchaseabilityScore
	IsHighlyPurchasable     bool `json:"is_highly_purchasable"`
	IsRecommendedForStyling bool `json:"is_recommended_for_styling"`
}

// AlternativesResponse lists substitutes for a product.
type AlternativesResponse struct {
	OriginalProduct struct {
		UUID         string  `json:"uuid"`
		Name         string  `json:"name"`
		BrandName    string  `json:"brand_name"`
		CurrentPrice float64 `json:"current_price"`
	} `json:"original_product"`
	Alternatives []domain.AlternativeProduct `json:"alternatives"`
	TotalFound   int                         `json:"total_found"`
}

// CheckLogsResponse wraps a page of audit entries.
type CheckLogsResponse struct {
	Logs   []domain.InventoryCheckLog `json:"logs"`
	Total  int                        `json:"total"`
	Limit  int                        `json:"limit"`
	Offset int                        `json:"offset"`
}

// CheckLogsParams defines query parameters for audit log queries.
type CheckLogsParams struct {
	Status string
	Limit  int
	Offset int
}

type uuidsRequest struct {
	ProductUUIDs []string `json:"product_uuids"`
}

func productPath(uuid, suffix string) string {
	return "/api/v1/products/" + url.PathEscape(uuid) + suffix
}

// CheckProduct runs a live check of one product.
func (c *Client) CheckProduct(ctx context.Context, uuid string) (*ProductCheck, error) {
	var res ProductCheck
	if err := c.post(ctx, productPath(uuid, "/inventory/check"), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckProducts runs live checks of up to 20 products.
func (c *Client) CheckProducts(ctx context.Context, uuids []string) (*CheckProductsResponse, error) {
	var res CheckProductsResponse
	if err := c.post(ctx, "/api/v1/inventory/check", uuidsRequest{ProductUUIDs: uuids}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckStyling checks a styling set and returns alternatives for products
// that cannot be bought.
func (c *Client) CheckStyling(ctx context.Context, uuids []string) (*StylingResponse, error) {
	var res StylingResponse
	if err := c.post(ctx, "/api/v1/inventory/styling-check", uuidsRequest{ProductUUIDs: uuids}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetInventoryStatus returns the stored state of a product.
func (c *Client) GetInventoryStatus(ctx context.Context, uuid string) (*InventoryStatus, error) {
	var res InventoryStatus
	if err := c.get(ctx, productPath(uuid, "/inventory"), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetScore returns a product's purchaseability score.
func (c *Client) GetScore(ctx context.Context, uuid string) (*Score, error) {
	var res Score
	if err := c.get(ctx, productPath(uuid, "/purchaseability"), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetAlternatives returns up to limit substitutes for a product. A limit of
// zero uses the server default.
func (c *Client) GetAlternatives(ctx context.Context, uuid string, limit int) (*AlternativesResponse, error) {
	path := productPath(uuid, "/alternatives")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var res AlternativesResponse
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListCheckLogs returns a product's audit entries, newest first.
func (c *Client) ListCheckLogs(ctx context.Context, uuid string, params *CheckLogsParams) (*CheckLogsResponse, error) {
	q := url.Values{}
	if params != nil {
		if params.Status != "" {
			q.Set("status", params.Status)
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	path := productPath(uuid, "/inventory/logs")
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res CheckLogsResponse
	if err := c.get(ctx, path, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetStatistics returns tracker-wide inventory statistics.
func (c *Client) GetStatistics(ctx context.Context) (*domain.InventoryStats, error) {
	var res domain.InventoryStats
	if err := c.get(ctx, "/api/v1/inventory/statistics", &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Rescore recomputes scores for the given products and returns how many
// were scored.
func (c *Client) Rescore(ctx context.Context, productIDs []int64) (int, error) {
	var res struct {
		Scored int `json:"scored"`
	}
	body := map[string][]int64{"product_ids": productIDs}
	if err := c.post(ctx, "/api/v1/scores/rescore", body, &res); err != nil {
		return 0, err
	}
	return res.Scored, nil
}
