package main

import "errors"

// KnownMetrics is the set of metric names exported by bob plus recording
// rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"bob_http_request_duration_seconds": true,
	"bob_http_requests_total":           true,

	// Health metrics.
	"bob_healthz_up": true,
	"bob_readyz_up":  true,

	// Ingest metrics.
	"bob_listings_ingested_total": true,
	"bob_sales_ingested_total":    true,

	// Matching metrics.
	"bob_listings_processed_total":     true,
	"bob_match_outcomes_total":         true,
	"bob_opportunities_total":          true,
	"bob_under_buy_dollars":            true,
	"bob_run_duration_seconds":         true,
	"bob_run_errors_total":             true,
	"bob_fingerprints_refreshed_total": true,

	// Alert metrics.
	"bob_alerts_created_total":          true,
	"bob_alerts_deduped_total":          true,
	"bob_alerts_fired_total":            true,
	"bob_notification_failures_total":   true,
	"bob_notification_duration_seconds": true,

	// Scheduler metrics.
	"bob_scheduler_next_run_timestamp": true,

	// Recording rules.
	"bob:http_requests:rate5m":         true,
	"bob:http_errors:rate5m":           true,
	"bob:listings_processed:rate5m":    true,
	"bob:opportunities:rate5m":         true,
	"bob:run_errors:rate5m":            true,
	"bob:notification_duration:p95_5m": true,

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
