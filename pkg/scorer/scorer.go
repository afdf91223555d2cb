package score

import (
	"math"
	"time"

	domain "github.com/donaldgifford/inventory-tracker/pkg/types"
)

// Weights defines the relative importance of each sub-score.
type Weights struct {
	Availability   float64
	Reliability    float64
	PriceStability float64
	Delivery       float64
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Availability:   0.40,
		Reliability:    0.30,
		PriceStability: 0.15,
		Delivery:       0.15,
	}
}

// Input holds everything the scorer reads. Previous carries the stored
// price-stability and delivery values used when there is no history.
type Input struct {
	Status   domain.InventoryStatus
	History  *domain.CheckHistory
	Previous *domain.PurchaseabilityScore
	Now      time.Time
}

// Breakdown shows per-factor scores.
type Breakdown struct {
	Availability   int `json:"availability"`
	Reliability    int `json:"reliability"`
	PriceStability int `json:"price_stability"`
	Delivery       int `json:"delivery"`
	Total          int `json:"total"`
}

// Compute derives a product's purchaseability score. It is a pure function
// of its input.
func Compute(in Input, w Weights) domain.PurchaseabilityScore {
	out := domain.NewPurchaseabilityScore(in.Status.ProductID)
	if in.Previous != nil {
		out.PriceStabilityScore = in.Previous.PriceStabilityScore
		out.DeliveryScore = in.Previous.DeliveryScore
		out.HistoricalAvailabilityRate = in.Previous.HistoricalAvailabilityRate
		out.PriceChangeFrequency = in.Previous.PriceChangeFrequency
		out.AverageStockDurationDays = in.Previous.AverageStockDurationDays
		out.ConfidenceLevel = in.Previous.ConfidenceLevel
	}

	out.AvailabilityScore = availabilityScore(&in.Status)
	out.ReliabilityScore = reliabilityScore(in.Status.CheckFailedCount)

	if h := in.History; h != nil && h.SuccessfulChecks > 0 {
		rate := float64(h.AvailableChecks) / float64(h.SuccessfulChecks)
		freq := float64(h.PriceChanges) / float64(h.SuccessfulChecks)
		avg := float64(h.WindowDays) * rate / float64(h.StockOuts+1)

		out.HistoricalAvailabilityRate = round2(rate)
		out.PriceChangeFrequency = round2(freq)
		avg = round2(avg)
		out.AverageStockDurationDays = &avg

		out.PriceStabilityScore = priceStabilityScore(freq)
		out.DeliveryScore = deliveryScore(avg)
		out.ConfidenceLevel = math.Min(1, float64(h.TotalChecks)/20)

		predict(out, &in.Status, h, rate, avg, in.Now)
	}

	b := Combine(out.AvailabilityScore, out.ReliabilityScore, out.PriceStabilityScore, out.DeliveryScore, w)
	out.OverallScore = b.Total
	out.RecommendationPriority = clamp(b.Total, 1, 100)
	out.LastCalculatedAt = in.Now

	return *out
}

// Combine applies the weights to the four sub-scores.
func Combine(availability, reliability, priceStability, delivery int, w Weights) Breakdown {
	b := Breakdown{
		Availability:   availability,
		Reliability:    reliability,
		PriceStability: priceStability,
		Delivery:       delivery,
	}

	total := float64(availability)*w.Availability +
		float64(reliability)*w.Reliability +
		float64(priceStability)*w.PriceStability +
		float64(delivery)*w.Delivery

	b.Total = clamp(int(math.Round(total)), 0, 100)
	return b
}

// availabilityScore maps the current stock state to a score.
func availabilityScore(s *domain.InventoryStatus) int {
	switch {
	case s.IsPurchasable && s.StockStatus == domain.StockInStock:
		return 90
	case s.StockStatus == domain.StockLowStock:
		return 60
	case s.StockStatus == domain.StockOutOfStock:
		return 10
	default:
		return 30
	}
}

// reliabilityScore penalizes a failed-check streak.
func reliabilityScore(failed int) int {
	switch {
	case failed == 0:
		return 100
	case failed < 3:
		return 80
	case failed < 5:
		return 60
	default:
		return 30
	}
}

// priceStabilityScore maps the share of checks that saw a price change.
func priceStabilityScore(freq float64) int {
	switch {
	case freq == 0:
		return 100
	case freq < 0.05:
		return 85
	case freq < 0.15:
		return 70
	case freq < 0.30:
		return 50
	default:
		return 30
	}
}

// deliveryScore rewards products that stay in stock for long stretches.
func deliveryScore(avgDays float64) int {
	switch {
	case avgDays >= 14:
		return 100
	case avgDays >= 7:
		return 80
	case avgDays >= 3:
		return 60
	case avgDays >= 1:
		return 40
	default:
		return 20
	}
}

// predict fills the stock-out and restock estimates.
func predict(
	out *domain.PurchaseabilityScore,
	s *domain.InventoryStatus,
	h *domain.CheckHistory,
	rate, avgDays float64,
	now time.Time,
) {
	out.PredictedStockOutDate = nil
	out.PredictedRestockDate = nil

	if s.IsPurchasable && s.LastAvailableAt != nil && avgDays > 0 {
		t := s.LastAvailableAt.Add(days(avgDays))
		out.PredictedStockOutDate = &t
		return
	}

	if !s.IsPurchasable && h.StockOuts > 0 {
		gap := float64(h.WindowDays) * (1 - rate) / float64(h.StockOuts)
		t := now.Add(days(gap))
		out.PredictedRestockDate = &t
	}
}

func days(d float64) time.Duration {
	return time.Duration(d * float64(24*time.Hour))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
