package domain

import (
	"encoding/json"
	"time"
)

// CheckResult is the outcome of one external availability check. Failures
// are data: Success is false and ErrorKind says why.
type CheckResult struct {
	ProductID      int64          `json:"product_id"`
	ProductUUID    string         `json:"product_uuid"`
	Success        bool           `json:"success"`
	IsAvailable    bool           `json:"is_available"`
	StockStatus    StockStatus    `json:"stock_status"`
	StockQuantity  *int           `json:"stock_quantity"`
	SizeStock      map[string]int `json:"size_stock,omitempty"`
	CurrentPrice   *float64       `json:"current_price"`
	PriceChanged   bool           `json:"price_changed"`
	Partial        bool           `json:"partial,omitempty"`
	ErrorMessage   string         `json:"error_message,omitempty"`
	ErrorKind      ErrorKind      `json:"error_kind,omitempty"`
	TimedOut       bool           `json:"timed_out,omitempty"`
	Throttled      bool           `json:"throttled,omitempty"`
	ResponseTimeMs int64          `json:"response_time_ms"`
	LastChecked    time.Time      `json:"last_checked"`
}

// Fail marks the result as failed with the given kind and message.
func (r *CheckResult) Fail(kind ErrorKind, msg string) {
	r.Success = false
	r.ErrorKind = kind
	r.ErrorMessage = msg
}

// InventoryCheckLog is the append-only audit record of one check attempt.
type InventoryCheckLog struct {
	ID                  int64           `json:"id"                      db:"id"`
	ProductID           int64           `json:"product_id"              db:"product_id"`
	StoreID             int64           `json:"store_id"                db:"store_id"`
	CheckType           CheckType       `json:"check_type"              db:"check_type"`
	Status              CheckStatus     `json:"status"                  db:"status"`
	PreviousStockStatus StockStatus     `json:"previous_stock_status"   db:"previous_stock_status"`
	NewStockStatus      StockStatus     `json:"new_stock_status"        db:"new_stock_status"`
	ResponseTimeMs      *int64          `json:"response_time_ms"        db:"response_time_ms"`
	APIResponseData     json.RawMessage `json:"api_response_data"       db:"api_response_data"`
	ErrorMessage        string          `json:"error_message,omitempty" db:"error_message"`
	ErrorKind           ErrorKind       `json:"error_kind,omitempty"    db:"error_kind"`
	PriceBefore         *float64        `json:"price_before"            db:"price_before"`
	PriceAfter          *float64        `json:"price_after"             db:"price_after"`
	AvailabilityChanged bool            `json:"availability_changed"    db:"availability_changed"`
	CheckedAt           time.Time       `json:"checked_at"              db:"checked_at"`
}

// StylingReport is the result of checking a set of products about to be
// recommended together.
type StylingReport struct {
	Results          []CheckResult                  `json:"results"`
	Alternatives     map[int64][]AlternativeProduct `json:"alternatives"`
	TotalChecked     int                            `json:"total_checked"`
	AvailableCount   int                            `json:"available_count"`
	UnavailableCount int                            `json:"unavailable_count"`
}

// InventoryStats aggregates tracker state for dashboards.
type InventoryStats struct {
	Overview       StatsOverview `json:"overview"`
	Scores         StatsScores   `json:"scores"`
	Stores         []StoreStats  `json:"stores"`
	RecentActivity StatsActivity `json:"recent_activity"`
}

// StatsOverview counts products by stock state.
type StatsOverview struct {
	TotalProducts   int `json:"total_products"`
	InStock         int `json:"in_stock"`
	LowStock        int `json:"low_stock"`
	OutOfStock      int `json:"out_of_stock"`
	Unknown         int `json:"unknown"`
	Purchasable     int `json:"purchasable"`
	RecentlyChecked int `json:"recently_checked"`
}

// StatsScores averages stored purchaseability scores.
type StatsScores struct {
	AverageOverallScore      float64 `json:"average_overall_score"`
	AverageAvailabilityScore float64 `json:"average_availability_score"`
	AverageReliabilityScore  float64 `json:"average_reliability_score"`
	HighScoreProducts        int     `json:"high_score_products"`
}

// StoreStats summarizes one store.
type StoreStats struct {
	StoreID             int64  `json:"store_id"`
	Name                string `json:"name"`
	IsActive            bool   `json:"is_active"`
	ConsecutiveFailures int    `json:"consecutive_failures"`
	ProductCount        int    `json:"product_count"`
	AvailableCount      int    `json:"available_count"`
}

// StatsActivity summarizes check activity over the trailing window.
type StatsActivity struct {
	TotalChecks           int     `json:"total_checks_24h"`
	SuccessfulChecks      int     `json:"successful_checks_24h"`
	FailedChecks          int     `json:"failed_checks_24h"`
	SuccessRate           float64 `json:"success_rate_24h"`
	AverageResponseTimeMs float64 `json:"average_response_time_ms"`
}
