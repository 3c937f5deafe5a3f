// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/caroogle/bob/tools/dashgen/rules"
)

// histogramSuffixes are the series a histogram exposes beyond its base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation problems. Errors fail generation; warnings do
// not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there were no errors.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Metrics parses expr and returns the metric names it selects.
func Metrics(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, err
	}
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names, nil
}

// Known reports whether name, or its histogram base name, is in known.
func Known(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Expr validates one expression, recording problems against owner.
func Expr(r *Result, owner, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		r.errorf("%s: empty expression", owner)
		return
	}
	names, err := Metrics(expr)
	if err != nil {
		r.errorf("%s: invalid PromQL %q: %v", owner, expr, err)
		return
	}
	if len(names) == 0 {
		r.warnf("%s: expression %q selects no metrics", owner, expr)
	}
	for _, n := range names {
		if !Known(n, known) {
			r.errorf("%s: unknown metric %q", owner, n)
		}
	}
}

// Dashboard validates every panel query in dash.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var r Result

	data, err := json.Marshal(dash)
	if err != nil {
		r.errorf("marshaling dashboard: %v", err)
		return r
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		r.errorf("decoding dashboard: %v", err)
		return r
	}

	panels := 0
	walkPanels(doc["panels"], func(title string, targets []any) {
		panels++
		if len(targets) == 0 {
			r.warnf("panel %q has no queries", title)
		}
		for _, t := range targets {
			q, _ := t.(map[string]any)
			expr, _ := q["expr"].(string)
			Expr(&r, fmt.Sprintf("panel %q", title), expr, known)
		}
	})
	if panels == 0 {
		r.errorf("dashboard has no panels")
	}
	return r
}

// walkPanels calls fn for every non-row panel, descending into rows.
func walkPanels(v any, fn func(title string, targets []any)) {
	list, _ := v.([]any)
	for _, item := range list {
		p, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if p["type"] == "row" {
			walkPanels(p["panels"], fn)
			continue
		}
		title, _ := p["title"].(string)
		targets, _ := p["targets"].([]any)
		fn(title, targets)
	}
}

// Rules validates every rule expression in cr.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				r.errorf("group %s: rule without record or alert name", g.Name)
				continue
			}
			Expr(&r, fmt.Sprintf("%s/%s", g.Name, name), rule.Expr, known)
			if rule.Alert != "" && rule.Labels["severity"] == "" {
				r.warnf("%s/%s: alert has no severity", g.Name, name)
			}
		}
	}
	return r
}
