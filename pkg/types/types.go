// Package domain defines the core business types for the inventory tracker.
package domain

import (
	"time"
)

// StockStatus is the coarse inventory state reported by a store.
type StockStatus string

// Stock status constants.
const (
	StockInStock      StockStatus = "in_stock"
	StockLowStock     StockStatus = "low_stock"
	StockOutOfStock   StockStatus = "out_of_stock"
	StockDiscontinued StockStatus = "discontinued"
	StockPreOrder     StockStatus = "pre_order"
	StockUnknown      StockStatus = "unknown"
)

// AvailabilityStatus is the purchase-facing state of a product.
type AvailabilityStatus string

// Availability status constants.
const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityRestricted  AvailabilityStatus = "restricted"
	AvailabilityChecking    AvailabilityStatus = "checking"
)

// APIType selects how a store is checked.
type APIType string

// API type constants.
const (
	APITypeREST     APIType = "rest_api"
	APITypeGraphQL  APIType = "graphql"
	APITypeScraping APIType = "scraping"
	APITypeRSS      APIType = "rss_feed"
)

// CheckType records what triggered an inventory check.
type CheckType string

// Check type constants.
const (
	CheckManual              CheckType = "manual"
	CheckScheduled           CheckType = "scheduled"
	CheckUserRequest         CheckType = "user_request"
	CheckStyleRecommendation CheckType = "style_recommendation"
)

// Valid reports whether t is a known check type.
func (t CheckType) Valid() bool {
	switch t {
	case CheckManual, CheckScheduled, CheckUserRequest, CheckStyleRecommendation:
		return true
	}
	return false
}

// CheckStatus is the outcome recorded in the audit log.
type CheckStatus string

// Check status constants.
const (
	CheckStatusSuccess CheckStatus = "success"
	CheckStatusFailed  CheckStatus = "failed"
	CheckStatusPartial CheckStatus = "partial"
	CheckStatusTimeout CheckStatus = "timeout"
)

// ErrorKind classifies why a check failed.
type ErrorKind string

// Error kinds. The zero value means no error.
const (
	ErrorKindNone       ErrorKind = ""
	ErrorKindConfig     ErrorKind = "config"
	ErrorKindTransport  ErrorKind = "transport"
	ErrorKindParse      ErrorKind = "parse"
	ErrorKindValidation ErrorKind = "validation"
)

// Product is a catalog product as seen by the tracker. The catalog owns
// these rows; the tracker only reads them.
type Product struct {
	ID            int64     `json:"id"                    db:"id"`
	UUID          string    `json:"uuid"                  db:"uuid"`
	Name          string    `json:"name"                  db:"name"`
	ExternalID    string    `json:"external_id"           db:"external_id"`
	CategoryID    *int64    `json:"category_id,omitempty" db:"category_id"`
	BrandName     string    `json:"brand_name"            db:"brand_name"`
	StoreID       int64     `json:"store_id"              db:"store_id"`
	StoreName     string    `json:"store_name"            db:"store_name"`
	OriginalPrice float64   `json:"original_price"        db:"original_price"`
	SalePrice     *float64  `json:"sale_price,omitempty"  db:"sale_price"`
	Currency      string    `json:"currency"              db:"currency"`
	MainImage     string    `json:"main_image,omitempty"  db:"main_image"`
	ProductURL    string    `json:"product_url"           db:"product_url"`
	IsAvailable   bool      `json:"is_available"          db:"is_available"`
	CreatedAt     time.Time `json:"created_at"            db:"created_at"`
}

// CurrentPrice returns the sale price when set, otherwise the original price.
func (p *Product) CurrentPrice() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.OriginalPrice
}

// PriorityCandidate is a product with its recent engagement signals.
type PriorityCandidate struct {
	Product               Product `json:"product"`
	WishlistCount         int     `json:"wishlist_count"`
	RecentRecommendations int     `json:"recent_recommendations"`
}

// AlternativeProduct is the lightweight projection returned by the
// alternative finder.
type AlternativeProduct struct {
	UUID                 string  `json:"uuid"`
	Name                 string  `json:"name"`
	BrandName            string  `json:"brand_name"`
	CurrentPrice         float64 `json:"current_price"`
	MainImage            string  `json:"main_image,omitempty"`
	PurchaseabilityScore int     `json:"purchaseability_score"`
	ProductURL           string  `json:"product_url"`
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}
