package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/khanhnv2901/gqlaudit/internal/checker"
	"github.com/khanhnv2901/gqlaudit/internal/graphql"
	"github.com/khanhnv2901/gqlaudit/internal/log"
	consts "github.com/khanhnv2901/gqlaudit/internal/shared/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit one GraphQL endpoint and fail when any check is violated",
	Long: heredoc.Doc(`
		Audit a GraphQL endpoint from the outside.

		The endpoint must answer { __typename } with "Query". When --auth is set the
		endpoint must reject the unauthenticated request and accept the authenticated one.
		Federation subgraphs ({ _service { sdl } }) reachable without auth are rejected
		unless --insecure-subgraph is set. Introspection is probed unless
		--allow-introspection=true; by default it is only probed on non-subgraphs.

		Every input can also come from the config file or from INPUT_<NAME> environment
		variables, which is how GitHub Actions passes step inputs.
	`),
	Example: heredoc.Doc(`
		gqlaudit check --endpoint https://api.example.com/graphql
		gqlaudit check --endpoint https://users.internal/graphql --subgraph --auth "Authorization: Bearer $TOKEN"
		INPUT_ENDPOINT=https://api.example.com/graphql INPUT_ALLOW_INTROSPECTION=false gqlaudit check -o json
	`),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)
		defer syncLogger(appCtx)

		runtimeCfg, err := resolveCheckConfig(viper.GetViper(), appCtx.Config.Defaults)
		if err != nil {
			return err
		}
		appCtx.Config.Check = runtimeCfg

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runCheck(ctx, cmd, appCtx, graphql.NewClient(time.Duration(runtimeCfg.TimeoutSecs)*time.Second, userAgent()))
	},
}

// runCheck audits the configured endpoint with transport and reports the outcome.
func runCheck(ctx context.Context, cmd *cobra.Command, appCtx *AppContext, transport checker.Transport) error {
	runtimeCfg := appCtx.Config.Check
	logger := appCtx.Logger.With("endpoint", runtimeCfg.Endpoint.Endpoint)

	chk := &checker.GraphQLChecker{Transport: transport, Policy: runtimeCfg.Endpoint}

	logger.Debugw("starting audit",
		"subgraph", runtimeCfg.Endpoint.Subgraph,
		"auth", runtimeCfg.Endpoint.AuthHeader != "",
		"introspection_policy", runtimeCfg.Endpoint.AllowIntrospection.String(),
		"insecure_subgraph", runtimeCfg.Endpoint.AllowInsecureSubgraphs,
	)

	start := time.Now()
	result := chk.Check(log.WithZap(ctx, appCtx.Logger.Desugar()), runtimeCfg.Endpoint.Endpoint)
	duration := time.Since(start)

	result = mergeInputViolations(result, runtimeCfg.InputViolations)

	if err := renderResult(cmd.OutOrStdout(), runtimeCfg.Output, result); err != nil {
		return err
	}

	if runtimeCfg.TelemetryEnabled {
		if err := recordTelemetry(appCtx, chk.Name(), result, duration); err != nil {
			logger.Warnw("failed to record telemetry", "error", err)
		}
	}
	if runtimeCfg.MetricsFile != "" {
		if err := writeMetricsFile(runtimeCfg.MetricsFile, result); err != nil {
			logger.Warnw("failed to write metrics file", "error", err)
		}
	}

	if len(result.Violations) == 0 {
		logger.Infow("audit passed", "duration", duration)
		return nil
	}

	joined := joinViolations(result.Violations)
	if path := os.Getenv(consts.GitHubOutputEnv); path != "" {
		if err := writeGitHubOutput(path, consts.ErrorOutputName, joined); err != nil {
			logger.Warnw("failed to write step output", "error", err)
		}
	}
	logger.Infow("audit failed", "violations", len(result.Violations), "duration", duration)

	return &ViolationsError{Endpoint: result.Target, Violations: result.Violations}
}

// mergeInputViolations puts input problems first, as they explain later probe failures.
func mergeInputViolations(result checker.CheckResult, inputViolations []string) checker.CheckResult {
	if len(inputViolations) == 0 {
		return result
	}
	var set checker.ViolationSet
	set.Merge(inputViolations...)
	set.Merge(result.Violations...)
	result.Violations = set.List()
	result.Status = checker.StatusFailed
	return result
}

func init() {
	flags := checkCmd.Flags()
	flags.String(flagKey(keyEndpoint), "", "GraphQL endpoint URL (required)")
	flags.String(flagKey(keyAuth), "", "credential header sent on authenticated probes, as `key: value`")
	flags.String(flagKey(keySubgraph), "false", "assert that the endpoint is a federation subgraph (true|false)")
	flags.String(flagKey(keyAllowIntrospection), "", "introspection policy: true skips the probe, false always probes, empty probes non-subgraphs")
	flags.String(flagKey(keyInsecureSubgraph), "false", "allow subgraphs reachable without auth (true|false)")
	flags.Int(flagKey(keyTimeout), defaultHTTPTimeoutSeconds, "per-request timeout in seconds")
	flags.StringP(flagKey(keyOutput), "o", outputText, "output format (text, json, yaml)")
	flags.Bool(flagKey(keyTelemetry), false, "append a run record to <results-dir>/telemetry.jsonl")
	flags.String(flagKey(keyResultsDir), defaultResultsDir, "directory for telemetry records")
	flags.String(flagKey(keyMetricsFile), "", "write Prometheus text-format metrics to this file")
	markBoolLike(flags, flagKey(keySubgraph), flagKey(keyInsecureSubgraph))

	for _, key := range []string{
		keyEndpoint, keyAuth, keySubgraph, keyAllowIntrospection, keyInsecureSubgraph,
		keyTimeout, keyOutput, keyTelemetry, keyResultsDir, keyMetricsFile,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flagKey(key))); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", key, err))
		}
	}
}
