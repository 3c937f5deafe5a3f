// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/caroogle/bob/tools/dashgen/panels"
)

// BuildOverview constructs the bob Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Bob Overview").
		Uid("bob-overview").
		Tags([]string{"bob", "arbitrage"}).
		Refresh("30s").
		Time("now-24h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.NextRunStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Matching").
		WithPanel(panels.IngestRate()).
		WithPanel(panels.ProcessedRate()).
		WithPanel(panels.OutcomeBreakdown()).
		WithPanel(panels.OpportunitiesByTier()).
		WithPanel(panels.UnderBuyDistribution()))

	b.WithRow(dashboard.NewRowBuilder("Runs").
		WithPanel(panels.RunDuration()).
		WithPanel(panels.RunErrors()).
		WithPanel(panels.FingerprintRefresh()))

	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.AlertsCreated()).
		WithPanel(panels.AlertsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
