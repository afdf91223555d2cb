package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("invt-recording-rules",
		RuleGroup{
			Name: "invt-recording",
			Rules: []Rule{
				{
					Record: "invt:http_requests:rate5m",
					Expr:   `sum(rate(invt_http_requests_total[5m]))`,
				},
				{
					Record: "invt:http_errors:rate5m",
					Expr:   `sum(rate(invt_http_requests_total{status=~"5.."}[5m]))`,
				},
				{
					Record: "invt:checks:rate5m",
					Expr:   `sum by (status) (rate(invt_checks_total[5m]))`,
				},
				{
					Record: "invt:check_errors:rate5m",
					Expr:   `sum by (kind) (rate(invt_check_errors_total[5m]))`,
				},
				{
					Record: "invt:availability_transitions:rate5m",
					Expr:   `sum by (direction) (rate(invt_availability_transitions_total[5m]))`,
				},
				{
					Record: "invt:notification_duration:p95_5m",
					Expr:   `histogram_quantile(0.95, sum(rate(invt_notification_duration_seconds_bucket[5m])) by (le))`,
				},
			},
		},
	)
}
