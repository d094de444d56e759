package security

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveWithinValidPath(t *testing.T) {
	base := t.TempDir()

	resolved, err := ResolveWithin(base, "telemetry.jsonl")
	if err != nil {
		t.Fatalf("ResolveWithin returned error: %v", err)
	}
	if !strings.HasPrefix(resolved, base) {
		t.Fatalf("expected resolved path %s to stay within base %s", resolved, base)
	}
}

func TestResolveWithinBlocksEscape(t *testing.T) {
	base := t.TempDir()
	_, err := ResolveWithin(base, "..", "etc", "passwd")
	if !errors.Is(err, ErrPathEscape) {
		t.Fatalf("expected ErrPathEscape, got %v", err)
	}
}

func TestResolveWithinEmptyBase(t *testing.T) {
	if _, err := ResolveWithin("", "file"); err == nil {
		t.Fatal("expected error for empty base directory")
	}
}

func TestAppendLineCreatesDirectoryAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")

	for _, line := range []string{"first", "second"} {
		if _, err := AppendLine(dir, "runs.jsonl", []byte(line)); err != nil {
			t.Fatalf("AppendLine(%q) returned error: %v", line, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Fatalf("unexpected file contents: %v", lines)
	}
}

func TestAppendLineRejectsEscape(t *testing.T) {
	if _, err := AppendLine(t.TempDir(), "../outside.jsonl", []byte("x")); !errors.Is(err, ErrPathEscape) {
		t.Fatalf("expected ErrPathEscape, got %v", err)
	}
}
