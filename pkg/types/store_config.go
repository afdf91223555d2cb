package domain

import (
	"time"
)

// MaxConsecutiveFailures is the failure streak at which a store's check
// policy is deactivated.
const MaxConsecutiveFailures = 10

const (
	defaultStoreTimeout = 30 * time.Second
	defaultParserKey    = "generic"
)

// StoreAPIConfig is the per-store check policy plus its health state.
type StoreAPIConfig struct {
	ID        int64  `json:"id"         db:"id"`
	StoreID   int64  `json:"store_id"   db:"store_id"`
	StoreName string `json:"store_name" db:"store_name"`

	// Check policy
	APIType              APIType           `json:"api_type"                     db:"api_type"`
	InventoryCheckURL    string            `json:"inventory_check_url,omitempty" db:"inventory_check_url"`
	InventorySelector    string            `json:"inventory_selector,omitempty"  db:"inventory_selector"`
	PriceSelector        string            `json:"price_selector,omitempty"      db:"price_selector"`
	AvailabilitySelector string            `json:"availability_selector,omitempty" db:"availability_selector"`
	RequestHeaders       map[string]string `json:"request_headers,omitempty"     db:"request_headers"`
	RequestDelaySeconds  float64           `json:"request_delay_seconds"        db:"request_delay_seconds"`
	MaxRetries           int               `json:"max_retries"                  db:"max_retries"`
	TimeoutSeconds       int               `json:"timeout_seconds"              db:"timeout_seconds"`
	SuccessIndicators    []string          `json:"success_indicators,omitempty"  db:"success_indicators"`
	UnavailableKeywords  []string          `json:"unavailable_keywords,omitempty" db:"unavailable_keywords"`
	ParserKey            string            `json:"parser_key"                   db:"parser_key"`
	RenderJS             bool              `json:"render_js"                    db:"render_js"`
	OptimisticDefault    *bool             `json:"optimistic_default,omitempty"  db:"optimistic_default"`
	DailyLimit           int64             `json:"daily_limit"                  db:"daily_limit"`

	// Health
	IsActive            bool       `json:"is_active"                       db:"is_active"`
	LastSuccessfulCheck *time.Time `json:"last_successful_check,omitempty" db:"last_successful_check"`
	ConsecutiveFailures int        `json:"consecutive_failures"            db:"consecutive_failures"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MarkSuccess resets the failure streak and stamps the last successful check.
func (c *StoreAPIConfig) MarkSuccess(now time.Time) {
	c.ConsecutiveFailures = 0
	c.LastSuccessfulCheck = &now
}

// MarkFailure extends the failure streak and deactivates the store once the
// streak reaches MaxConsecutiveFailures. It reports whether this call tripped
// the breaker.
func (c *StoreAPIConfig) MarkFailure() bool {
	c.ConsecutiveFailures++
	if c.ConsecutiveFailures >= MaxConsecutiveFailures && c.IsActive {
		c.IsActive = false
		return true
	}
	return false
}

// Reactivate manually closes the breaker.
func (c *StoreAPIConfig) Reactivate() {
	c.IsActive = true
	c.ConsecutiveFailures = 0
}

// Timeout returns the per-request timeout.
func (c *StoreAPIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultStoreTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RequestDelay returns the courtesy delay between requests to this store.
func (c *StoreAPIConfig) RequestDelay() time.Duration {
	if c.RequestDelaySeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestDelaySeconds * float64(time.Second))
}

// Parser returns the response parser key, falling back to "generic".
func (c *StoreAPIConfig) Parser() string {
	if c.ParserKey == "" {
		return defaultParserKey
	}
	return c.ParserKey
}
