package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// inventory-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("invt-alerts",
		RuleGroup{
			Name: "invt-alerts",
			Rules: []Rule{
				{
					Alert: "InvtDown",
					Expr:  `absent(up{job="inventory-tracker"})`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Inventory Tracker is down",
						"description": "The inventory-tracker job has been absent for more than 2 minutes.",
					},
				},
				{
					Alert: "InvtReadinessDown",
					Expr:  `invt_readyz_up == 0`,
					For:   "2m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "Inventory Tracker readiness check is failing",
						"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
					},
				},
				{
					Alert: "InvtHighErrorRate",
					Expr:  `invt:http_errors:rate5m / invt:http_requests:rate5m > 0.05`,
					For:   "5m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "High HTTP error rate on Inventory Tracker",
						"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
					},
				},
				{
					Alert: "InvtCheckFailureRate",
					Expr:  `sum(invt:checks:rate5m{status=~"failed|timeout"}) / sum(invt:checks:rate5m) > 0.25`,
					For:   "15m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Availability checks are failing",
						"description": "More than 25% of availability checks have failed or timed out for 15 minutes.",
					},
				},
				{
					Alert: "InvtStoreFailing",
					Expr:  `max by (store) (invt_store_consecutive_failures) >= 7`,
					For:   "0m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Store {{ $labels.store }} is close to deactivation",
						"description": "The store has failed 7 or more consecutive checks. It is deactivated at 10.",
					},
				},
				{
					Alert: "InvtStoreDeactivated",
					Expr:  `increase(invt_store_deactivations_total[5m]) > 0`,
					For:   "0m",
					Labels: map[string]string{
						"severity": "critical",
					},
					Annotations: map[string]string{
						"summary":     "A store was deactivated by the failure breaker",
						"description": "Checks for the store are disabled until it is reactivated with invctl stores reactivate.",
					},
				},
				{
					Alert: "InvtSchedulerStalled",
					Expr:  `time() - invt_scheduler_last_run_timestamp > 3 * 3600`,
					For:   "10m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Scheduled inventory checks have stopped",
						"description": "No scheduled inventory check has completed in the last 3 hours.",
					},
				},
				{
					Alert: "InvtNotificationFailures",
					Expr:  `increase(invt_notification_failures_total[5m]) > 0`,
					For:   "1m",
					Labels: map[string]string{
						"severity": "warning",
					},
					Annotations: map[string]string{
						"summary":     "Notification delivery failures detected",
						"description": "One or more stock event notifications (Discord webhooks) have failed to send.",
					},
				},
			},
		},
	)
}
