// Package metrics defines Prometheus metrics for inventory-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invt"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded, 0 otherwise.",
	})
)

// Check metrics. Labels are bounded: store is the store ID, type is the
// check type and status is the audit status.
var (
	ChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checks_total",
		Help:      "Total number of availability checks by store, check type and status.",
	}, []string{"store", "type", "status"})

	CheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "check_duration_seconds",
		Help:      "Duration of external availability checks in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"api_type"})

	CheckErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "check_errors_total",
		Help:      "Total number of failed checks by error kind.",
	}, []string{"kind"})

	AvailabilityTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "availability_transitions_total",
		Help:      "Total number of purchasability flips by direction.",
	}, []string{"direction"})

	PriceChangesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_changes_total",
		Help:      "Total number of observed price changes above threshold.",
	})
)

// Store health metrics.
var (
	StoreConsecutiveFailures = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_consecutive_failures",
		Help:      "Current failure streak per store.",
	}, []string{"store"})

	StoreDeactivationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_deactivations_total",
		Help:      "Total number of stores deactivated by the failure breaker.",
	})

	ActiveStores = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_stores",
		Help:      "Number of stores whose checks are currently enabled.",
	})

	StoreThrottledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_throttled_total",
		Help:      "Total number of checks refused by a store's daily request budget.",
	}, []string{"store"})
)

// Scoring metrics.
var (
	ScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "purchaseability_score_distribution",
		Help:      "Distribution of computed overall purchaseability scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})

	AlternativesServedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alternatives_served_total",
		Help:      "Total number of alternative products returned.",
	})
)

// Scheduler metrics.
var (
	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "batch_duration_seconds",
		Help:      "Duration of check batches in seconds.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
	})

	BatchProductsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "batch_products_total",
		Help:      "Total number of products selected for scheduled checks by tier.",
	}, []string{"tier"})

	SchedulerLastRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_last_run_timestamp",
		Help:      "Unix timestamp of the last completed scheduled inventory check.",
	})

	SchedulerNextRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_run_timestamp",
		Help:      "Unix timestamp of the next scheduled inventory check.",
	})

	LockContentionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lock_contention_total",
		Help:      "Total number of product lock acquisitions that had to wait for another holder.",
	})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of stock event notifications sent by event kind.",
	}, []string{"kind"})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
