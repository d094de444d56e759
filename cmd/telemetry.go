package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/khanhnv2901/gqlaudit/internal/checker"
	"github.com/khanhnv2901/gqlaudit/internal/shared/security"
)

const telemetryFilename = "telemetry.jsonl"

type telemetryRecord struct {
	RunID           string    `json:"run_id"`
	Timestamp       time.Time `json:"timestamp"`
	Command         string    `json:"command"`
	Endpoint        string    `json:"endpoint"`
	Status          string    `json:"status"`
	ViolationCount  int       `json:"violation_count"`
	ProbeCount      int       `json:"probe_count"`
	FailedProbes    int       `json:"failed_probes"`
	Subgraph        bool      `json:"subgraph"`
	DurationSeconds float64   `json:"duration_seconds"`
}

func recordTelemetry(appCtx *AppContext, command string, result checker.CheckResult, duration time.Duration) error {
	okCount, failCount := summarizeProbes(result.Probes)

	record := telemetryRecord{
		RunID:           uuid.NewString(),
		Timestamp:       time.Now().UTC(),
		Command:         command,
		Endpoint:        result.Target,
		Status:          result.Status,
		ViolationCount:  len(result.Violations),
		ProbeCount:      okCount + failCount,
		FailedProbes:    failCount,
		Subgraph:        result.Subgraph,
		DurationSeconds: duration.Seconds(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal telemetry: %w", err)
	}

	if _, err := security.AppendLine(appCtx.Config.Check.ResultsDir, telemetryFilename, data); err != nil {
		return fmt.Errorf("write telemetry: %w", err)
	}
	return nil
}

func summarizeProbes(probes []checker.ProbeResult) (okCount, failCount int) {
	for _, p := range probes {
		if p.OK {
			okCount++
		} else {
			failCount++
		}
	}
	return okCount, failCount
}
