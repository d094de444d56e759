package checker

import "time"

// Outcome is a probe's verdict. The zero value is a failure with no reason; use Ok or Failed.
type Outcome struct {
	ok     bool
	Reason string
}

func Ok() Outcome {
	return Outcome{ok: true}
}

func Failed(reason string) Outcome {
	return Outcome{Reason: reason}
}

func (o Outcome) OK() bool {
	return o.ok
}

// ProbeResult is one probe execution as recorded in a Report.
type ProbeResult struct {
	Name       string  `json:"name" yaml:"name"`
	OK         bool    `json:"ok" yaml:"ok"`
	Reason     string  `json:"reason,omitempty" yaml:"reason,omitempty"`
	DurationMs float64 `json:"duration_ms" yaml:"duration_ms"`
}

func newProbeResult(name string, outcome Outcome, elapsed time.Duration) ProbeResult {
	return ProbeResult{
		Name:       name,
		OK:         outcome.ok,
		Reason:     outcome.Reason,
		DurationMs: float64(elapsed.Microseconds()) / 1000,
	}
}
