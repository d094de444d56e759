package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/khanhnv2901/gqlaudit/internal/checker"
	consts "github.com/khanhnv2901/gqlaudit/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix matches how GitHub Actions exposes step inputs (INPUT_ENDPOINT, INPUT_AUTH, ...).
const envPrefix = "INPUT"

// Config keys. They double as config-file keys and, upper-cased, as INPUT_* variables.
const (
	keyEndpoint           = "endpoint"
	keyAuth               = "auth"
	keySubgraph           = "subgraph"
	keyAllowIntrospection = "allow_introspection"
	keyInsecureSubgraph   = "insecure_subgraph"
	keyTimeout            = "timeout"
	keyOutput             = "output"
	keyResultsDir         = "results_dir"
	keyTelemetry          = "telemetry"
	keyMetricsFile        = "metrics_file"
)

const (
	defaultHTTPTimeoutSeconds = int(consts.DefaultHTTPTimeout / time.Second)
	defaultResultsDir         = "./results"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Defaults DefaultValues
	Check    CheckRuntimeConfig
}

// DefaultValues represent operator-level defaults, typically derived from env/config.
type DefaultValues struct {
	TimeoutSecs      int
	TelemetryEnabled bool
	ResultsDir       string
	Output           string
}

// CheckRuntimeConfig consolidates the resolved settings of one check invocation.
type CheckRuntimeConfig struct {
	Endpoint         checker.EndpointConfig
	TimeoutSecs      int
	Output           string
	TelemetryEnabled bool
	ResultsDir       string
	MetricsFile      string
	// InputViolations are reported alongside the probe violations.
	InputViolations []string
}

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Defaults: DefaultValues{
			TimeoutSecs:      defaultHTTPTimeoutSeconds,
			TelemetryEnabled: false,
			ResultsDir:       defaultResultsDir,
			Output:           outputText,
		},
		Check: CheckRuntimeConfig{
			TimeoutSecs: defaultHTTPTimeoutSeconds,
			Output:      outputText,
			ResultsDir:  defaultResultsDir,
		},
	}
}

// resolveCheckConfig reads the check inputs from v. Malformed boolean inputs do not abort:
// each becomes an input violation and the input keeps its default, so the probes still run.
func resolveCheckConfig(v *viper.Viper, defaults DefaultValues) (CheckRuntimeConfig, error) {
	cfg := CheckRuntimeConfig{
		TimeoutSecs:      defaults.TimeoutSecs,
		Output:           defaults.Output,
		TelemetryEnabled: defaults.TelemetryEnabled,
		ResultsDir:       defaults.ResultsDir,
	}

	endpoint := strings.TrimSpace(v.GetString(keyEndpoint))
	if endpoint == "" {
		return cfg, fmt.Errorf("--%s is required: %w", keyEndpoint, sharedErrors.ErrEmptyEndpoint)
	}
	cfg.Endpoint.Endpoint = endpoint
	cfg.Endpoint.AuthHeader = strings.TrimSpace(v.GetString(keyAuth))

	var err error
	if cfg.Endpoint.Subgraph, err = parseBoolInput(keySubgraph, v.GetString(keySubgraph)); err != nil {
		cfg.InputViolations = append(cfg.InputViolations, err.Error())
	}
	if cfg.Endpoint.AllowInsecureSubgraphs, err = parseBoolInput(keyInsecureSubgraph, v.GetString(keyInsecureSubgraph)); err != nil {
		cfg.InputViolations = append(cfg.InputViolations, err.Error())
	}
	if cfg.Endpoint.AllowIntrospection, err = parseIntrospectionInput(v.GetString(keyAllowIntrospection)); err != nil {
		cfg.InputViolations = append(cfg.InputViolations, err.Error())
	}

	if v.IsSet(keyTimeout) {
		timeout := v.GetInt(keyTimeout)
		if timeout <= 0 {
			return cfg, fmt.Errorf("%w: %d", sharedErrors.ErrInvalidTimeout, timeout)
		}
		cfg.TimeoutSecs = timeout
	}

	if v.IsSet(keyOutput) {
		cfg.Output = strings.ToLower(strings.TrimSpace(v.GetString(keyOutput)))
	}
	switch cfg.Output {
	case outputText, outputJSON, outputYAML:
	default:
		return cfg, fmt.Errorf("%w: %q", sharedErrors.ErrInvalidOutputFormat, cfg.Output)
	}

	if v.IsSet(keyTelemetry) {
		cfg.TelemetryEnabled = v.GetBool(keyTelemetry)
	}
	if dir := strings.TrimSpace(v.GetString(keyResultsDir)); dir != "" {
		cfg.ResultsDir = dir
	}
	cfg.MetricsFile = strings.TrimSpace(v.GetString(keyMetricsFile))

	return cfg, nil
}

// parseBoolInput accepts exactly "true" or "false"; empty means false.
func parseBoolInput(name, value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "", "false":
		return false, nil
	case "true":
		return true, nil
	}
	return false, &InputError{Name: name, Value: value}
}

func parseIntrospectionInput(value string) (checker.IntrospectionPolicy, error) {
	policy, err := checker.ParseIntrospectionPolicy(value)
	if err != nil {
		return checker.IntrospectionAuto, &InputError{Name: keyAllowIntrospection, Value: value}
	}
	return policy, nil
}

// markBoolLike lets a string flag be passed bare ("--subgraph") to mean true.
func markBoolLike(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			flag.NoOptDefVal = "true"
		}
	}
}

// flagKey maps a config key to its dashed flag name.
func flagKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
