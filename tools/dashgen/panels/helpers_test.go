package panels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/tools/dashgen/panels"
	"github.com/caroogle/bob/tools/dashgen/validate"
)

func TestQueryBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expr       string
		want       string
		wantMetric string
	}{
		{
			name:       "sum rate",
			expr:       panels.SumRate("bob_alerts_fired_total", "5m"),
			want:       `sum(rate(bob_alerts_fired_total{job="bob"}[5m]))`,
			wantMetric: "bob_alerts_fired_total",
		},
		{
			name:       "sum increase by labels",
			expr:       panels.SumIncrease("bob_alerts_created_total", "1h", "type", "reason"),
			want:       `sum by (type, reason) (increase(bob_alerts_created_total{job="bob"}[1h]))`,
			wantMetric: "bob_alerts_created_total",
		},
		{
			name:       "quantile per job",
			expr:       panels.Quantile(0.95, "bob_run_duration_seconds", "15m", "job_name"),
			want:       `histogram_quantile(0.95, sum by (le, job_name) (rate(bob_run_duration_seconds_bucket{job="bob"}[15m])))`,
			wantMetric: "bob_run_duration_seconds_bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.expr)

			names, err := validate.Metrics(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantMetric}, names)
		})
	}
}
