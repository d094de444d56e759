package checker

import (
	"context"
	"net/http"

	"github.com/khanhnv2901/gqlaudit/internal/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Transport posts one GraphQL document. *graphql.Client satisfies it.
type Transport interface {
	Post(ctx context.Context, endpoint, query string, headers http.Header) (*graphql.Response, error)
}

// Probe names as they appear in reports and logs.
const (
	ProbeReachability  = "reachability"
	ProbeAuth          = "auth"
	ProbeSubgraph      = "subgraph"
	ProbeIntrospection = "introspection"
)

const (
	reasonNotSubgraph          = "Server is not a federated subgraph"
	reasonIntrospectionEnabled = "Server allows introspection"
)

// probeReachability succeeds when the endpoint answers { __typename } with "Query".
func probeReachability(ctx context.Context, t Transport, endpoint string, headers http.Header) Outcome {
	resp, err := t.Post(ctx, endpoint, graphql.TypenameQuery, headers)
	if err != nil {
		return Failed(graphql.Reason(err))
	}

	var data struct {
		Typename string `json:"__typename"`
	}
	if !graphql.DecodeData(resp.Body, &data) || data.Typename != "Query" {
		return Failed("Unexpected response: " + graphql.RawSnippet(resp.Body))
	}
	return Ok()
}

// probeSubgraph succeeds when the endpoint is a federation subgraph, returning its SDL.
func probeSubgraph(ctx context.Context, t Transport, endpoint string, headers http.Header) (Outcome, string) {
	resp, err := t.Post(ctx, endpoint, graphql.ServiceSDLQuery, headers)
	if err != nil {
		return Failed(graphql.Reason(err)), ""
	}

	var data struct {
		Service *struct {
			SDL string `json:"sdl"`
		} `json:"_service"`
	}
	if !graphql.DecodeData(resp.Body, &data) || data.Service == nil || data.Service.SDL == "" {
		return Failed(reasonNotSubgraph), ""
	}
	return Ok(), data.Service.SDL
}

// probeIntrospection fails when the server lists its types to the caller.
func probeIntrospection(ctx context.Context, t Transport, endpoint string, headers http.Header) Outcome {
	resp, err := t.Post(ctx, endpoint, graphql.SchemaTypesQuery, headers)
	if err != nil {
		return Failed(graphql.Reason(err))
	}

	var data struct {
		Schema *struct {
			Types []struct {
				Name string `json:"name"`
			} `json:"types"`
		} `json:"__schema"`
	}
	if graphql.DecodeData(resp.Body, &data) && data.Schema != nil && len(data.Schema.Types) > 0 {
		return Failed(reasonIntrospectionEnabled)
	}
	return Ok()
}

// countSDLTypes parses a subgraph's SDL and counts its type definitions and extensions.
func countSDLTypes(sdl string) (int, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "subgraph.graphql", Input: sdl})
	if err != nil {
		return 0, err
	}
	return len(doc.Definitions) + len(doc.Extensions), nil
}
