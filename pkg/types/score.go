package domain

import (
	"time"
)

// NeutralScore is the value every sub-score starts at before any data exists.
const NeutralScore = 50

// PurchaseabilityScore is the per-product composite estimate of whether the
// product can currently be bought.
type PurchaseabilityScore struct {
	ProductID int64 `json:"product_id" db:"product_id"`

	OverallScore        int `json:"overall_score"         db:"overall_score"`
	AvailabilityScore   int `json:"availability_score"    db:"availability_score"`
	ReliabilityScore    int `json:"reliability_score"     db:"reliability_score"`
	PriceStabilityScore int `json:"price_stability_score" db:"price_stability_score"`
	DeliveryScore       int `json:"delivery_score"        db:"delivery_score"`

	HistoricalAvailabilityRate float64    `json:"historical_availability_rate"       db:"historical_availability_rate"`
	AverageStockDurationDays   *float64   `json:"average_stock_duration_days"        db:"average_stock_duration_days"`
	PriceChangeFrequency       float64    `json:"price_change_frequency"             db:"price_change_frequency"`
	PredictedStockOutDate      *time.Time `json:"predicted_stock_out_date"           db:"predicted_stock_out_date"`
	PredictedRestockDate       *time.Time `json:"predicted_restock_date"             db:"predicted_restock_date"`
	ConfidenceLevel            float64    `json:"confidence_level"                   db:"confidence_level"`
	RecommendationPriority     int        `json:"recommendation_priority"            db:"recommendation_priority"`
	LastCalculatedAt           time.Time  `json:"last_calculated_at"                 db:"last_calculated_at"`
}

// NewPurchaseabilityScore returns the neutral score for a product with no
// history.
func NewPurchaseabilityScore(productID int64) *PurchaseabilityScore {
	return &PurchaseabilityScore{
		ProductID:              productID,
		OverallScore:           NeutralScore,
		AvailabilityScore:      NeutralScore,
		ReliabilityScore:       NeutralScore,
		PriceStabilityScore:    NeutralScore,
		DeliveryScore:          NeutralScore,
		RecommendationPriority: NeutralScore,
	}
}

// IsHighlyPurchasable reports overall_score >= 80.
func (s *PurchaseabilityScore) IsHighlyPurchasable() bool {
	return s.OverallScore >= 80
}

// IsRecommendedForStyling reports whether the product is safe to recommend.
func (s *PurchaseabilityScore) IsRecommendedForStyling() bool {
	return s.OverallScore >= 60 && s.AvailabilityScore >= 70 && s.ReliabilityScore >= 60
}

// CheckHistory summarizes audit log entries for one product over a window.
type CheckHistory struct {
	TotalChecks      int
	SuccessfulChecks int
	AvailableChecks  int
	PriceChanges     int
	StockOuts        int
	WindowDays       int
}
