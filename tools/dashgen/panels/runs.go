package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RunDuration shows p95 duration of the shadow, catalogue and fingerprint
// runs, one series per job_name.
func RunDuration() *timeseries.PanelBuilder {
	return series("Run Duration (p95)", "95th percentile duration of shadow, catalogue and fingerprint runs", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.95, "bob_run_duration_seconds", "15m", "job_name"), "{{job_name}}", "A")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// RunErrors shows batch runs that failed in the last day.
func RunErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Run Errors (24h)").
		Description("Batch runs that ended with an error in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(SumIncrease("bob_run_errors_total", "24h"), "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// FingerprintRefresh shows fingerprints upserted from profitable sales per
// hour.
func FingerprintRefresh() *timeseries.PanelBuilder {
	return series("Fingerprints Refreshed", "Fingerprints upserted from profitable sales per hour", ThirdWidth).
		WithTarget(PromQuery(SumIncrease("bob_fingerprints_refreshed_total", "1h"), "fingerprints", "A")).
		DrawStyle(common.GraphDrawStyleBars)
}
