package rules

// AlertRules returns a PrometheusRule CR containing alert rules for bob
// operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "bob-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "bob-alerts",
					Rules: []Rule{
						{
							Alert: "BobDown",
							Expr:  `absent(up{job="bob"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "bob is down",
								"description": "The bob job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "BobReadinessDown",
							Expr:  `bob_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "bob readiness check is failing",
								"description": "The database has been unreachable from bob for more than 2 minutes.",
							},
						},
						{
							Alert: "BobHighErrorRate",
							Expr:  `bob:http_errors:rate5m / bob:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on bob",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "BobRunErrors",
							Expr:  `bob:run_errors:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Batch runs are failing",
								"description": "The {{ $labels.job_name }} job has been failing for more than 15 minutes.",
							},
						},
						{
							Alert: "BobMatchingStalled",
							Expr:  `sum(increase(bob_listings_processed_total[6h])) == 0 and sum(increase(bob_listings_ingested_total[6h])) > 0`,
							For:   "30m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Listings are ingested but not matched",
								"description": "Listings arrived in the last 6 hours but none were evaluated.",
							},
						},
						{
							Alert: "BobNotificationFailures",
							Expr:  `increase(bob_notification_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Notification delivery failures detected",
								"description": "One or more alert notifications (Slack webhooks) have failed to send.",
							},
						},
					},
				},
			},
		},
	}
}
