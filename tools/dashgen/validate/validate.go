// Package validate checks generated dashboards and rule files: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/inventory-tracker/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge appends other's findings to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// histogramSuffixes are the series Prometheus derives from a histogram name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses a PromQL expression and checks each selected metric against
// known. Histogram series resolve to their base metric.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := vs.Name
		if name == "" {
			for _, m := range vs.LabelMatchers {
				if m.Name == "__name__" {
					name = m.Value
				}
			}
		}
		if !isKnown(name, known) {
			res.errorf("%s: unknown metric %q", where, name)
		}
		return nil
	})
	return res
}

func isKnown(name string, known map[string]bool) bool {
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

// panelJSON is the subset of a Grafana panel the validator reads. Rows carry
// their children in Panels.
type panelJSON struct {
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Targets []targetRef `json:"targets"`
	Panels  []panelJSON `json:"panels"`
}

type targetRef struct {
	Expr  string `json:"expr"`
	RefID string `json:"refId"`
}

// Dashboard validates every panel query in a dashboard. The dashboard is
// read through its JSON form so any builder output can be checked.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	for i := range doc.Panels {
		res.Merge(panel(&doc.Panels[i], known))
	}
	return res
}

func panel(p *panelJSON, known map[string]bool) Result {
	var res Result
	if p.Type == "row" || len(p.Panels) > 0 {
		if len(p.Panels) == 0 {
			res.warnf("row %q has no panels", p.Title)
		}
		for i := range p.Panels {
			res.Merge(panel(&p.Panels[i], known))
		}
		return res
	}

	if len(p.Targets) == 0 {
		res.warnf("panel %q has no queries", p.Title)
	}
	for _, t := range p.Targets {
		if t.Expr == "" {
			res.errorf("panel %q target %s: empty expression", p.Title, t.RefID)
			continue
		}
		res.Merge(Expr(fmt.Sprintf("panel %q target %s", p.Title, t.RefID), t.Expr, known))
	}
	return res
}

// Rules validates recording and alert rule expressions. Names recorded by
// earlier rules in the same file become known to later ones.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	scope := make(map[string]bool, len(known))
	for k, v := range known {
		scope[k] = v
	}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule has neither record nor alert", g.Name)
				continue
			}
			res.Merge(Expr(fmt.Sprintf("%s/%s", g.Name, name), r.Expr, scope))
			if r.Record != "" {
				scope[r.Record] = true
			}
			if r.Alert != "" && r.Labels["severity"] == "" {
				res.warnf("%s/%s: alert has no severity label", g.Name, name)
			}
		}
	}
	return res
}
