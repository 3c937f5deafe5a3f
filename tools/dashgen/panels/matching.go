package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// IngestRate returns a timeseries panel showing listings and sales accepted
// by the API per minute.
func IngestRate() *timeseries.PanelBuilder {
	return series("Ingest / min", "Listings and sales accepted by the API per minute", TSWidth).
		WithTarget(PromQuery(SumRate("bob_listings_ingested_total", "5m")+" * 60", "listings", "A")).
		WithTarget(PromQuery(SumRate("bob_sales_ingested_total", "5m")+" * 60", "sales", "B")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// ProcessedRate returns a timeseries panel showing listings evaluated per
// second by match mode.
func ProcessedRate() *timeseries.PanelBuilder {
	return series("Listings Evaluated", "Listings evaluated per second, by match mode", TSWidth).
		WithTarget(PromQuery(`bob:listings_processed:rate5m`, "{{mode}}", "A")).
		Unit("ops").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// OutcomeBreakdown returns a stacked timeseries panel of scoring outcomes.
func OutcomeBreakdown() *timeseries.PanelBuilder {
	return series("Match Outcomes", "Scoring outcomes per hour (opportunity, no_match, below_threshold, ...)", TSWidth).
		WithTarget(PromQuery(SumIncrease("bob_match_outcomes_total", "1h", "outcome"), "{{outcome}}", "A")).
		FillOpacity(40).
		LineWidth(1).
		Stacking(common.NewStackingConfigBuilder().Mode(common.StackingModeNormal)).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		DrawStyle(common.GraphDrawStyleBars)
}

// OpportunitiesByTier returns a timeseries panel of opportunities upserted by
// confidence tier.
func OpportunitiesByTier() *timeseries.PanelBuilder {
	return series("Opportunities by Tier", "Opportunities upserted per second, by confidence tier", TSWidth).
		WithTarget(PromQuery(`bob:opportunities:rate5m`, "{{tier}}", "A")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// UnderBuyDistribution returns a bar gauge panel showing accepted under-buy
// amounts across histogram buckets.
func UnderBuyDistribution() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Under-buy Distribution").
		Description("Under-buy of accepted opportunities over the last day, in dollars").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(SumIncrease("bob_under_buy_dollars_bucket", "24h", "le"), "{{le}}", "A")).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
