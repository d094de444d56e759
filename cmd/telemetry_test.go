package cmd

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khanhnv2901/gqlaudit/internal/checker"
)

func TestRecordTelemetry_AppendsRecords(t *testing.T) {
	appCtx := newTestAppContext(t, "https://api.example.com/graphql")

	result := sampleResult()
	for i := 0; i < 2; i++ {
		if err := recordTelemetry(appCtx, "check graphql", result, 3*time.Second); err != nil {
			t.Fatalf("recordTelemetry returned error: %v", err)
		}
	}

	f, err := os.Open(filepath.Join(appCtx.Config.Check.ResultsDir, telemetryFilename))
	if err != nil {
		t.Fatalf("failed to open telemetry file: %v", err)
	}
	defer f.Close()

	var records []telemetryRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec telemetryRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("failed to unmarshal record: %v", err)
		}
		records = append(records, rec)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	rec := records[0]
	if _, err := uuid.Parse(rec.RunID); err != nil {
		t.Errorf("expected uuid run id, got %q", rec.RunID)
	}
	if records[0].RunID == records[1].RunID {
		t.Error("expected distinct run ids")
	}
	if rec.Command != "check graphql" || rec.Endpoint != result.Target || rec.Status != checker.StatusFailed {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.ViolationCount != 2 || rec.ProbeCount != 2 || rec.FailedProbes != 1 || !rec.Subgraph {
		t.Errorf("unexpected counts: %+v", rec)
	}
	if rec.DurationSeconds != 3 {
		t.Errorf("expected duration 3s, got %f", rec.DurationSeconds)
	}
}

func TestSummarizeProbes(t *testing.T) {
	okCount, failCount := summarizeProbes([]checker.ProbeResult{{OK: true}, {OK: false}, {OK: true}})
	if okCount != 2 || failCount != 1 {
		t.Fatalf("unexpected summary: ok=%d fail=%d", okCount, failCount)
	}
}
