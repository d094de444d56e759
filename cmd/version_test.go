package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runVersion(t *testing.T, flags map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() {
		versionCmd.SetOut(nil)
		for name := range flags {
			_ = versionCmd.Flags().Set(name, "false")
		}
	})
	for name, value := range flags {
		if err := versionCmd.Flags().Set(name, value); err != nil {
			t.Fatalf("failed to set %s: %v", name, err)
		}
	}

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	b := currentBuild()

	if got := runVersion(t, nil); got != "gqlaudit "+b.Version+"\n" {
		t.Fatalf("unexpected version output: %q", got)
	}

	verbose := runVersion(t, map[string]string{"verbose": "true"})
	for _, want := range []string{"commit:   " + b.GitCommit, "platform: " + b.Platform} {
		if !strings.Contains(verbose, want) {
			t.Errorf("expected verbose output to contain %q, got %q", want, verbose)
		}
	}

	var decoded buildInfo
	if err := json.Unmarshal([]byte(runVersion(t, map[string]string{"json": "true"})), &decoded); err != nil {
		t.Fatalf("expected JSON output: %v", err)
	}
	if decoded != b {
		t.Errorf("unexpected build info: %+v", decoded)
	}
}

func TestCurrentBuildPrefersLdflags(t *testing.T) {
	original := Version
	Version = "v1.2.3"
	t.Cleanup(func() {
		Version = original
	})

	if got := currentBuild().Version; got != "v1.2.3" {
		t.Fatalf("expected injected version, got %s", got)
	}
	if got := userAgent(); got != "gqlaudit/v1.2.3" {
		t.Fatalf("unexpected user agent: %s", got)
	}
}
