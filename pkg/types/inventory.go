package domain

import (
	"maps"
	"math"
	"time"
)

const (
	// LowStockThreshold is the largest quantity still reported as low stock.
	LowStockThreshold = 10

	// FailedCheckThreshold is the failed-check streak that pins a product to
	// the checking state.
	FailedCheckThreshold = 3

	// DefaultPriceChangeThreshold is the absolute price delta, in currency
	// units, above which a new observation counts as a price change.
	DefaultPriceChangeThreshold = 1.0

	recentCheckWindow = time.Hour
)

// InventoryStatus is the per-product availability state.
type InventoryStatus struct {
	ID        int64 `json:"id"         db:"id"`
	ProductID int64 `json:"product_id" db:"product_id"`

	StockStatus        StockStatus        `json:"stock_status"        db:"stock_status"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" db:"availability_status"`
	IsPurchasable      bool               `json:"is_purchasable"      db:"is_purchasable"`
	StockQuantity      *int               `json:"stock_quantity"      db:"stock_quantity"`
	SizeStock          map[string]int     `json:"size_stock"          db:"size_stock"`

	CurrentPrice          *float64 `json:"current_price"           db:"current_price"`
	PriceChanged          bool     `json:"price_changed"           db:"price_changed"`
	PriceChangePercentage *float64 `json:"price_change_percentage" db:"price_change_percentage"`

	LastCheckedAt   *time.Time `json:"last_checked_at"   db:"last_checked_at"`
	LastAvailableAt *time.Time `json:"last_available_at" db:"last_available_at"`

	ConsecutiveUnavailableCount int    `json:"consecutive_unavailable_count" db:"consecutive_unavailable_count"`
	CheckFailedCount            int    `json:"check_failed_count"            db:"check_failed_count"`
	LastErrorMessage            string `json:"last_error_message,omitempty"  db:"last_error_message"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewInventoryStatus returns the initial state for a product that has never
// been checked.
func NewInventoryStatus(productID int64) *InventoryStatus {
	return &InventoryStatus{
		ProductID:          productID,
		StockStatus:        StockUnknown,
		AvailabilityStatus: AvailabilityChecking,
		SizeStock:          map[string]int{},
	}
}

// StockStatusForQuantity bands a reported quantity.
func StockStatusForQuantity(q int) StockStatus {
	switch {
	case q > LowStockThreshold:
		return StockInStock
	case q > 0:
		return StockLowStock
	default:
		return StockOutOfStock
	}
}

// MarkAvailable records a successful check that found the product for sale.
// A nil quantity keeps the current stock band unless that band contradicts
// availability.
func (s *InventoryStatus) MarkAvailable(now time.Time, quantity *int, sizeStock map[string]int) {
	s.AvailabilityStatus = AvailabilityAvailable
	s.IsPurchasable = true
	s.LastCheckedAt = &now
	s.LastAvailableAt = &now
	s.ConsecutiveUnavailableCount = 0
	s.CheckFailedCount = 0
	s.LastErrorMessage = ""

	if quantity != nil {
		q := max(*quantity, 0)
		s.StockQuantity = &q
		s.StockStatus = StockStatusForQuantity(q)
	} else {
		s.StockQuantity = nil
		switch s.StockStatus {
		case StockUnknown, StockOutOfStock, StockDiscontinued, "":
			s.StockStatus = StockInStock
		}
	}

	if sizeStock != nil {
		s.SizeStock = sizeStock
	}

	if s.StockStatus == StockOutOfStock {
		s.IsPurchasable = false
	}
}

// MarkUnavailable records a successful check that found the product not for
// sale. stock is the stock status the store reported; empty means
// out_of_stock.
func (s *InventoryStatus) MarkUnavailable(now time.Time, reason string, stock StockStatus) {
	if stock == "" {
		stock = StockOutOfStock
	}
	s.AvailabilityStatus = AvailabilityUnavailable
	s.IsPurchasable = false
	s.StockStatus = stock
	s.LastCheckedAt = &now
	s.ConsecutiveUnavailableCount++
	s.LastErrorMessage = reason
}

// MarkCheckFailed records a check that could not determine availability.
// Once FailedCheckThreshold failures accumulate the product is pinned to
// checking until a later success.
func (s *InventoryStatus) MarkCheckFailed(now time.Time, reason string) {
	s.CheckFailedCount++
	s.LastCheckedAt = &now
	s.LastErrorMessage = reason

	if s.CheckFailedCount >= FailedCheckThreshold {
		s.AvailabilityStatus = AvailabilityChecking
		s.IsPurchasable = false
	}
}

// ApplyPrice stores a newly observed price and reports whether it differs
// from the stored one by more than threshold. The new price always replaces
// the stored price.
func (s *InventoryStatus) ApplyPrice(price, threshold float64) bool {
	changed := false
	if s.CurrentPrice != nil && *s.CurrentPrice != 0 {
		old := *s.CurrentPrice
		if math.Abs(price-old) > threshold {
			pct := (price - old) / old * 100
			pct = math.Round(pct*100) / 100
			s.PriceChangePercentage = &pct
			changed = true
		}
	}
	s.PriceChanged = changed
	s.CurrentPrice = &price
	return changed
}

// IsRecentlyChecked reports whether the last check happened within the
// last hour.
func (s *InventoryStatus) IsRecentlyChecked(now time.Time) bool {
	return s.LastCheckedAt != nil && now.Sub(*s.LastCheckedAt) < recentCheckWindow
}

// NeedsUrgentCheck reports whether the product has never been checked or is
// on an unavailable or failure streak.
func (s *InventoryStatus) NeedsUrgentCheck() bool {
	return s.LastCheckedAt == nil ||
		s.ConsecutiveUnavailableCount >= FailedCheckThreshold ||
		s.CheckFailedCount >= FailedCheckThreshold
}

// Clone returns a deep copy.
func (s *InventoryStatus) Clone() *InventoryStatus {
	c := *s
	if s.StockQuantity != nil {
		q := *s.StockQuantity
		c.StockQuantity = &q
	}
	if s.CurrentPrice != nil {
		p := *s.CurrentPrice
		c.CurrentPrice = &p
	}
	if s.PriceChangePercentage != nil {
		p := *s.PriceChangePercentage
		c.PriceChangePercentage = &p
	}
	c.SizeStock = maps.Clone(s.SizeStock)
	return &c
}
