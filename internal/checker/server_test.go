package checker

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/khanhnv2901/gqlaudit/internal/graphql"
)

// fakeGraphQL is a configurable GraphQL endpoint for probe tests.
type fakeGraphQL struct {
	// AuthKey/AuthValue, when set, must be present or the server answers 401.
	AuthKey   string
	AuthValue string
	// RawBody, when set, is returned verbatim for every request.
	RawBody string
	// Typename answered for { __typename }; defaults to "Query".
	Typename string
	// SDL answered for { _service { sdl } }; empty means "not a subgraph".
	SDL string
	// Introspection controls whether { __schema { types { name } } } lists types.
	Introspection bool

	mu       sync.Mutex
	requests []recordedRequest
}

type recordedRequest struct {
	Query  string
	Header http.Header
}

func (f *fakeGraphQL) start(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(server.Close)
	return server
}

func (f *fakeGraphQL) serve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Query: body.Query, Header: r.Header.Clone()})
	f.mu.Unlock()

	if f.RawBody != "" {
		_, _ = w.Write([]byte(f.RawBody))
		return
	}
	if f.AuthKey != "" && r.Header.Get(f.AuthKey) != f.AuthValue {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch body.Query {
	case graphql.TypenameQuery:
		typename := f.Typename
		if typename == "" {
			typename = "Query"
		}
		writeJSON(w, map[string]interface{}{"data": map[string]interface{}{"__typename": typename}})
	case graphql.ServiceSDLQuery:
		if f.SDL == "" {
			writeJSON(w, map[string]interface{}{"errors": []map[string]string{{"message": `Cannot query field "_service" on type "Query".`}}})
			return
		}
		writeJSON(w, map[string]interface{}{"data": map[string]interface{}{"_service": map[string]string{"sdl": f.SDL}}})
	case graphql.SchemaTypesQuery:
		if !f.Introspection {
			writeJSON(w, map[string]interface{}{"errors": []map[string]string{{"message": "GraphQL introspection is not allowed"}}})
			return
		}
		writeJSON(w, map[string]interface{}{"data": map[string]interface{}{"__schema": map[string]interface{}{
			"types": []map[string]string{{"name": "Query"}, {"name": "String"}},
		}}})
	default:
		w.WriteHeader(http.StatusBadRequest)
	}
}

func (f *fakeGraphQL) queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, req := range f.requests {
		out = append(out, req.Query)
	}
	return out
}

func (f *fakeGraphQL) requestsFor(query string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedRequest
	for _, req := range f.requests {
		if req.Query == query {
			out = append(out, req)
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	_ = json.NewEncoder(w).Encode(v)
}
