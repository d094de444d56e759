package checker

import (
	"context"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/khanhnv2901/gqlaudit/internal/log"
)

// Violation messages.
const (
	MsgInvalidEndpoint      = "Endpoint must be an absolute http(s) URL"
	MsgMalformedAuthHeader  = "Auth header was malformed, must look like `key: value`"
	MsgAuthNotEnforced      = "Auth was not enforced for endpoint"
	MsgInsecureSubgraph     = "Insecure subgraphs are not allowed, either set `auth` or `insecure_subgraph: true`"
	prefixBasicFailed       = "Basic check failed: "
	prefixAuthFailed        = "Auth failed: "
	prefixSubgraphFailed    = "Subgraph check failed: "
	prefixIntrospectionFail = "Introspection check failed: "
)

// Report is everything one run learned about an endpoint.
type Report struct {
	Endpoint      string
	Violations    ViolationSet
	Probes        []ProbeResult
	IsSubgraph    bool
	SubgraphTypes int
	Duration      time.Duration
}

// Passed reports whether the endpoint produced no violations.
func (r *Report) Passed() bool {
	return r.Violations.Len() == 0
}

// run is the state owned by a single invocation of Run.
type run struct {
	transport Transport
	endpoint  string
	headers   http.Header
	report    *Report
	log       logr.Logger
}

// Run audits cfg.Endpoint. Probes execute strictly in order on the calling goroutine; the
// returned Report is never nil and all failures are carried as violations.
func Run(ctx context.Context, transport Transport, cfg EndpointConfig) *Report {
	start := time.Now()
	report := &Report{Endpoint: cfg.Endpoint}
	defer func() { report.Duration = time.Since(start) }()

	r := &run{
		transport: transport,
		headers:   http.Header{},
		report:    report,
		log:       log.FromContext(ctx).WithValues("endpoint", cfg.Endpoint),
	}

	// Input problems are reported alone: nothing else can be trusted without them.
	endpoint, err := ParseEndpoint(cfg.Endpoint)
	if err != nil {
		r.log.V(1).Info("endpoint rejected", "error", err.Error())
		report.Violations.Add(MsgInvalidEndpoint)
		return report
	}
	r.endpoint = endpoint
	var cred *Credential
	if cfg.AuthHeader != "" {
		parsed, err := ParseCredential(cfg.AuthHeader)
		if err != nil {
			r.log.V(1).Info("auth header rejected")
			report.Violations.Add(MsgMalformedAuthHeader)
			return report
		}
		cred = &parsed
	}

	basic := r.probe(ProbeReachability, func() Outcome {
		return probeReachability(ctx, r.transport, r.endpoint, r.headers)
	})

	reachable := basic
	if cred != nil {
		reachable = r.checkAuth(ctx, *cred, basic)
	} else if !basic.OK() {
		report.Violations.Add(prefixBasicFailed + basic.Reason)
	}

	// The endpoint does not answer GraphQL with the headers we have; every later probe
	// would fail for the same reason.
	if !reachable.OK() {
		return report
	}

	var sdl string
	subgraph := r.probe(ProbeSubgraph, func() Outcome {
		var outcome Outcome
		outcome, sdl = probeSubgraph(ctx, r.transport, r.endpoint, r.headers)
		return outcome
	})
	report.IsSubgraph = subgraph.OK()
	if report.IsSubgraph {
		if n, err := countSDLTypes(sdl); err != nil {
			r.log.V(1).Info("subgraph SDL did not parse", "error", err.Error())
		} else {
			report.SubgraphTypes = n
		}
	}

	if cfg.Subgraph && !subgraph.OK() {
		report.Violations.Add(prefixSubgraphFailed + subgraph.Reason)
	}
	if cred == nil && subgraph.OK() && !cfg.AllowInsecureSubgraphs {
		report.Violations.Add(MsgInsecureSubgraph)
	}

	if cfg.AllowIntrospection.ShouldProbe(report.IsSubgraph) {
		introspection := r.probe(ProbeIntrospection, func() Outcome {
			return probeIntrospection(ctx, r.transport, r.endpoint, r.headers)
		})
		if !introspection.OK() {
			report.Violations.Add(prefixIntrospectionFail + introspection.Reason)
		}
	} else {
		r.log.V(1).Info("introspection probe skipped", "policy", cfg.AllowIntrospection.String(), "subgraph", report.IsSubgraph)
	}

	return report
}

// checkAuth flags an endpoint that answered without credentials, then attaches cred to the
// run's headers and verifies the endpoint answers with it. It returns the authenticated
// reachability outcome.
func (r *run) checkAuth(ctx context.Context, cred Credential, basic Outcome) Outcome {
	if basic.OK() {
		r.report.Violations.Add(MsgAuthNotEnforced)
	}

	r.headers = cred.Apply(r.headers)
	authed := r.probe(ProbeAuth, func() Outcome {
		return probeReachability(ctx, r.transport, r.endpoint, r.headers)
	})
	if !authed.OK() {
		r.report.Violations.Add(prefixAuthFailed + authed.Reason)
	}
	return authed
}

func (r *run) probe(name string, fn func() Outcome) Outcome {
	start := time.Now()
	outcome := fn()
	elapsed := time.Since(start)

	r.report.Probes = append(r.report.Probes, newProbeResult(name, outcome, elapsed))
	r.log.V(1).Info("probe finished", "probe", name, "ok", outcome.OK(), "reason", outcome.Reason, "duration", elapsed)
	return outcome
}
