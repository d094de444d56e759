package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/khanhnv2901/gqlaudit/internal/graphql"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newTestAppContext returns an AppContext with a no-op logger and results under a temp dir.
func newTestAppContext(t *testing.T, endpoint string) *AppContext {
	t.Helper()

	cfg := newCLIConfig()
	cfg.Check.Endpoint.Endpoint = endpoint
	cfg.Check.ResultsDir = t.TempDir()

	return &AppContext{
		Logger: zap.NewNop().Sugar(),
		Config: cfg,
	}
}

// newTestCommand returns a command whose stdout is captured in the returned buffer.
func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	c := &cobra.Command{Use: "check"}
	c.SetOut(&out)
	c.SetErr(&out)
	return c, &out
}

func disableColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = original
	})
}

// graphQLServer answers the audit queries. A non-empty token requires `Authorization: <token>`.
func graphQLServer(t *testing.T, token, sdl string, introspection bool) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		var payload interface{}
		switch body.Query {
		case graphql.TypenameQuery:
			payload = map[string]interface{}{"data": map[string]string{"__typename": "Query"}}
		case graphql.ServiceSDLQuery:
			if sdl == "" {
				payload = map[string]interface{}{"errors": []map[string]string{{"message": "unknown field _service"}}}
			} else {
				payload = map[string]interface{}{"data": map[string]interface{}{"_service": map[string]string{"sdl": sdl}}}
			}
		case graphql.SchemaTypesQuery:
			if introspection {
				payload = map[string]interface{}{"data": map[string]interface{}{
					"__schema": map[string]interface{}{"types": []map[string]string{{"name": "Query"}}},
				}}
			} else {
				payload = map[string]interface{}{"errors": []map[string]string{{"message": "introspection disabled"}}}
			}
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return server
}
