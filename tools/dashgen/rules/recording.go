package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "bob-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "bob-recording",
					Rules: []Rule{
						{
							Record: "bob:http_requests:rate5m",
							Expr:   `sum(rate(bob_http_requests_total[5m]))`,
						},
						{
							Record: "bob:http_errors:rate5m",
							Expr:   `sum(rate(bob_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "bob:listings_processed:rate5m",
							Expr:   `sum(rate(bob_listings_processed_total[5m])) by (mode)`,
						},
						{
							Record: "bob:opportunities:rate5m",
							Expr:   `sum(rate(bob_opportunities_total[5m])) by (tier)`,
						},
						{
							Record: "bob:run_errors:rate5m",
							Expr:   `sum(rate(bob_run_errors_total[5m])) by (job_name)`,
						},
						{
							Record: "bob:notification_duration:p95_5m",
							Expr:   `histogram_quantile(0.95, sum(rate(bob_notification_duration_seconds_bucket[5m])) by (le))`,
						},
					},
				},
			},
		},
	}
}
