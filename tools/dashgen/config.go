package main

import "errors"

// KnownMetrics is the set of metric names exported by inventory-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"invt_http_request_duration_seconds": true,
	"invt_http_requests_total":           true,

	// Health metrics.
	"invt_healthz_up": true,
	"invt_readyz_up":  true,

	// Check metrics.
	"invt_checks_total":                   true,
	"invt_check_duration_seconds":         true,
	"invt_check_errors_total":             true,
	"invt_availability_transitions_total": true,
	"invt_price_changes_total":            true,

	// Store breaker metrics.
	"invt_store_consecutive_failures": true,
	"invt_store_deactivations_total":  true,
	"invt_active_stores":              true,
	"invt_store_throttled_total":      true,

	// Scoring metrics.
	"invt_purchaseability_score_distribution": true,
	"invt_alternatives_served_total":          true,

	// Scheduler metrics.
	"invt_batch_duration_seconds":       true,
	"invt_batch_products_total":         true,
	"invt_scheduler_last_run_timestamp": true,
	"invt_scheduler_next_run_timestamp": true,
	"invt_lock_contention_total":        true,

	// Notification metrics.
	"invt_notifications_sent_total":      true,
	"invt_notification_failures_total":   true,
	"invt_notification_duration_seconds": true,

	// Recording rules.
	"invt:http_requests:rate5m":            true,
	"invt:http_errors:rate5m":              true,
	"invt:checks:rate5m":                   true,
	"invt:check_errors:rate5m":             true,
	"invt:availability_transitions:rate5m": true,
	"invt:notification_duration:p95_5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
