package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate shows API requests per second from the recording rule.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "API requests per second, health checks excluded", TSWidth).
		WithTarget(PromQuery(`bob:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// LatencyPercentiles shows p50, p95 and p99 API latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	p := series("Latency Percentiles", "API request duration percentiles", TSWidth)
	for i, q := range []struct {
		quantile float64
		legend   string
	}{{0.50, "p50"}, {0.95, "p95"}, {0.99, "p99"}} {
		p.WithTarget(PromQuery(
			Quantile(q.quantile, "bob_http_request_duration_seconds", "5m"),
			q.legend, string(rune('A'+i)),
		))
	}
	return p.
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// ErrorRate shows 5xx responses as a percentage of API requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "API 5xx responses as a percentage of requests", TSWidth).
		WithTarget(PromQuery(`bob:http_errors:rate5m / bob:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
