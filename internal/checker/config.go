package checker

import (
	"fmt"
	"strings"

	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

// IntrospectionPolicy says whether the introspection probe applies to a run.
type IntrospectionPolicy int

const (
	// IntrospectionAuto probes only when the server is not a federation subgraph.
	IntrospectionAuto IntrospectionPolicy = iota
	// IntrospectionAllow never probes.
	IntrospectionAllow
	// IntrospectionForbid always probes.
	IntrospectionForbid
)

func (p IntrospectionPolicy) String() string {
	switch p {
	case IntrospectionAllow:
		return "allow"
	case IntrospectionForbid:
		return "forbid"
	}
	return "auto"
}

// ParseIntrospectionPolicy accepts "true"/"false" (as the CI input is spelled), the policy
// names, or an empty string for Auto.
func ParseIntrospectionPolicy(value string) (IntrospectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return IntrospectionAuto, nil
	case "true", "allow":
		return IntrospectionAllow, nil
	case "false", "forbid":
		return IntrospectionForbid, nil
	}
	return IntrospectionAuto, fmt.Errorf("%w: %q", sharedErrors.ErrInvalidBoolean, value)
}

// ShouldProbe resolves the policy against the subgraph probe's verdict.
func (p IntrospectionPolicy) ShouldProbe(isSubgraph bool) bool {
	switch p {
	case IntrospectionAllow:
		return false
	case IntrospectionForbid:
		return true
	}
	return !isSubgraph
}

// EndpointConfig is the immutable input of one run.
type EndpointConfig struct {
	Endpoint               string              `json:"endpoint" yaml:"endpoint"`
	AuthHeader             string              `json:"-" yaml:"-"`
	Subgraph               bool                `json:"subgraph" yaml:"subgraph"`
	AllowIntrospection     IntrospectionPolicy `json:"-" yaml:"-"`
	AllowInsecureSubgraphs bool                `json:"insecure_subgraph" yaml:"insecure_subgraph"`
}
