package cmd

import (
	"fmt"
	"time"

	"github.com/khanhnv2901/gqlaudit/internal/checker"
	"github.com/prometheus/client_golang/prometheus"
)

// writeMetricsFile exports result in the Prometheus text format for node_exporter's
// textfile collector.
func writeMetricsFile(path string, result checker.CheckResult) error {
	registry := prometheus.NewRegistry()

	passed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gqlaudit_check_passed",
		Help: "1 when the endpoint passed every applicable check.",
	}, []string{"endpoint"})
	violations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gqlaudit_violations",
		Help: "Number of distinct violations found for the endpoint.",
	}, []string{"endpoint"})
	probeOK := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gqlaudit_probe_ok",
		Help: "1 when the probe succeeded.",
	}, []string{"endpoint", "probe"})
	probeDuration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gqlaudit_probe_duration_seconds",
		Help: "Wall time of the probe request.",
	}, []string{"endpoint", "probe"})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "gqlaudit_last_run_timestamp_seconds",
		Help: "Unix time the audit finished.",
	})

	for _, c := range []prometheus.Collector{passed, violations, probeOK, probeDuration, lastRun} {
		if err := registry.Register(c); err != nil {
			return fmt.Errorf("register metric: %w", err)
		}
	}

	passed.WithLabelValues(result.Target).Set(boolGauge(len(result.Violations) == 0))
	violations.WithLabelValues(result.Target).Set(float64(len(result.Violations)))
	for _, p := range result.Probes {
		probeOK.WithLabelValues(result.Target, p.Name).Set(boolGauge(p.OK))
		probeDuration.WithLabelValues(result.Target, p.Name).Set(p.DurationMs / 1000)
	}
	lastRun.Set(float64(time.Now().Unix()))

	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
