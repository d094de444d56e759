package checker

import (
	"context"
	"time"
)

// CheckResult represents the result of a single endpoint audit
type CheckResult struct {
	Target        string        `json:"target" yaml:"target"`
	CheckedAt     time.Time     `json:"checked_at" yaml:"checked_at"`
	Status        string        `json:"status" yaml:"status"`
	Violations    []string      `json:"violations" yaml:"violations"`
	Subgraph      bool          `json:"subgraph" yaml:"subgraph"`
	SubgraphTypes int           `json:"subgraph_types,omitempty" yaml:"subgraph_types,omitempty"`
	Introspection string        `json:"introspection_policy" yaml:"introspection_policy"`
	Probes        []ProbeResult `json:"probes,omitempty" yaml:"probes,omitempty"`
	ResponseTime  float64       `json:"response_time_ms,omitempty" yaml:"response_time_ms,omitempty"`
}

// Result statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Checker is the interface that all check implementations must satisfy
type Checker interface {
	// Check performs the actual check logic for a single target
	Check(ctx context.Context, target string) CheckResult

	// Name returns the name of this checker (e.g., "check graphql")
	Name() string
}

// GraphQLChecker runs the endpoint audit for any target with a fixed policy.
type GraphQLChecker struct {
	Transport Transport
	// Policy is copied for each target; its Endpoint field is ignored.
	Policy EndpointConfig
}

var _ Checker = (*GraphQLChecker)(nil)

// Check audits target with the checker's policy.
func (g *GraphQLChecker) Check(ctx context.Context, target string) CheckResult {
	cfg := g.Policy
	cfg.Endpoint = target

	checkedAt := time.Now().UTC()
	report := Run(ctx, g.Transport, cfg)

	result := CheckResult{
		Target:        target,
		CheckedAt:     checkedAt,
		Status:        StatusOK,
		Violations:    report.Violations.List(),
		Subgraph:      report.IsSubgraph,
		SubgraphTypes: report.SubgraphTypes,
		Introspection: cfg.AllowIntrospection.String(),
		Probes:        report.Probes,
		ResponseTime:  float64(report.Duration.Microseconds()) / 1000,
	}
	if !report.Passed() {
		result.Status = StatusFailed
	}
	return result
}

// Name returns the name of this checker
func (g *GraphQLChecker) Name() string {
	return "check graphql"
}
