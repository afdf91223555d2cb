// Package rules generates the inventory-tracker recording and alert rules,
// both as Prometheus Operator PrometheusRule resources and as plain rule
// files for a standalone Prometheus.
package rules

// PrometheusRule is a Kubernetes custom resource for Prometheus Operator.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the CR metadata fields.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named collection of recording or alerting rules.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is a single recording or alerting rule. Exactly one of Record and
// Alert is set.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// RuleFile is a standalone Prometheus rules file, as loaded through
// rule_files by the docker-compose Prometheus.
type RuleFile struct {
	Groups []RuleGroup `yaml:"groups"`
}

// newPrometheusRule wraps groups in a PrometheusRule carrying the labels
// the cluster's rule selector and the service's ownership label expect.
func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: name,
			Labels: map[string]string{
				"prometheus":                "system-rules-prometheus",
				"app.kubernetes.io/part-of": "inventory-tracker",
			},
		},
		Spec: PrometheusRuleSpec{Groups: groups},
	}
}

// File returns the CR's groups as a plain rules file.
func (cr PrometheusRule) File() RuleFile {
	return RuleFile{Groups: cr.Spec.Groups}
}
