package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AlertsCreated returns a timeseries panel showing alert log writes by type
// and reason, with deduplicated alerts alongside.
func AlertsCreated() *timeseries.PanelBuilder {
	return series("Alerts Logged",
		"UPCOMING and ACTION alerts written per hour, and alerts suppressed by the daily dedup key", TSWidth).
		WithTarget(PromQuery(SumIncrease("bob_alerts_created_total", "1h", "type", "reason"), "{{type}} {{reason}}", "A")).
		WithTarget(PromQuery(SumIncrease("bob_alerts_deduped_total", "1h"), "deduplicated", "B")).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip())
}

// AlertsRate returns a timeseries panel showing the rate of alerts delivered.
func AlertsRate() *timeseries.PanelBuilder {
	return series("Alerts Delivered Rate", "Alerts delivered to Slack per second", TSWidth).
		WithTarget(PromQuery(SumRate("bob_alerts_fired_total", "5m"), "alerts/s", "A"))
}

// NotificationLatency returns a timeseries panel showing the p95 notification
// webhook latency.
func NotificationLatency() *timeseries.PanelBuilder {
	return series("Notification Latency (p95)", "95th percentile Slack webhook latency", TSWidth).
		WithTarget(PromQuery(`bob:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5))
}

// NotificationFailures returns a stat panel showing notification failures
// in the past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Notification Failures (24h)").
		Description("Failed alert notification deliveries in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(SumIncrease("bob_notification_failures_total", "24h"), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
