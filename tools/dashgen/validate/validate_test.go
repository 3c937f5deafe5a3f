package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/tools/dashgen/rules"
	"github.com/caroogle/bob/tools/dashgen/validate"
)

var known = map[string]bool{
	"bob_run_duration_seconds": true,
	"bob_run_errors_total":     true,
	"bob:run_errors:rate5m":    true,
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	names, err := validate.Metrics(
		`histogram_quantile(0.95, sum(rate(bob_run_duration_seconds_bucket{job="bob"}[5m])) by (le)) / bob:run_errors:rate5m`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bob_run_duration_seconds_bucket", "bob:run_errors:rate5m"}, names)

	_, err = validate.Metrics(`sum(rate(bob_run_errors_total[5m])`)
	assert.Error(t, err)
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, validate.Known("bob_run_errors_total", known))
	assert.True(t, validate.Known("bob_run_duration_seconds_bucket", known))
	assert.True(t, validate.Known("bob_run_duration_seconds_count", known))
	assert.False(t, validate.Known("bob_run_errors_total_bucket", known))
	assert.False(t, validate.Known("bob_listings_fetched_total", known))
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		wantErr  bool
		wantWarn bool
	}{
		{name: "known metric", expr: `rate(bob_run_errors_total[5m]) > 0`},
		{name: "unknown metric", expr: `rate(bob_nope_total[5m])`, wantErr: true},
		{name: "invalid syntax", expr: `rate(bob_run_errors_total[5m]`, wantErr: true},
		{name: "empty", expr: ` `, wantErr: true},
		{name: "no metrics", expr: `time()`, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var r validate.Result
			validate.Expr(&r, "test", tt.expr, known)
			assert.Equal(t, tt.wantErr, !r.Ok(), "errors: %v", r.Errors)
			assert.Equal(t, tt.wantWarn, len(r.Warnings) > 0, "warnings: %v", r.Warnings)
		})
	}
}

func TestRules_MissingName(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name:  "g",
		Rules: []rules.Rule{{Expr: `bob_run_errors_total`}, {Alert: "X", Expr: `bob_run_errors_total > 0`}},
	}}}}

	r := validate.Rules(cr, known)
	assert.Len(t, r.Errors, 1)
	assert.Len(t, r.Warnings, 1)
}
