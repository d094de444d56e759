package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/khanhnv2901/gqlaudit/internal/checker"
	consts "github.com/khanhnv2901/gqlaudit/internal/shared/constants"
	sharedErrors "github.com/khanhnv2901/gqlaudit/internal/shared/errors"
)

func renderResult(w io.Writer, format string, result checker.CheckResult) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("%w: %v", sharedErrors.ErrSerializationFailed, err)
		}
		return nil
	case outputYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("%w: %v", sharedErrors.ErrSerializationFailed, err)
		}
		_, err = w.Write(data)
		return err
	case outputText, "":
		return renderText(w, result)
	}
	return fmt.Errorf("%w: %q", sharedErrors.ErrInvalidOutputFormat, format)
}

func renderText(w io.Writer, result checker.CheckResult) error {
	var b strings.Builder

	if len(result.Violations) == 0 {
		fmt.Fprintf(&b, "%s %s passed all checks\n", colorSuccess("✓"), result.Target)
	} else {
		fmt.Fprintf(&b, "%s %s failed %d check(s)\n", colorError("✗"), result.Target, len(result.Violations))
		for _, v := range result.Violations {
			fmt.Fprintf(&b, "  - %s\n", v)
		}
	}

	subgraph := "no"
	if result.Subgraph {
		subgraph = fmt.Sprintf("yes (%d types)", result.SubgraphTypes)
	}
	fmt.Fprintf(&b, "%s %s\n", colorInfo("Status:"), formatStatusWithColor(result.Status))
	fmt.Fprintf(&b, "%s %s\n", colorInfo("Subgraph:"), subgraph)
	fmt.Fprintf(&b, "%s %s\n", colorInfo("Introspection policy:"), formatPolicyWithColor(result.Introspection))

	_, err := io.WriteString(w, b.String())
	return err
}

func joinViolations(violations []string) string {
	return strings.Join(violations, consts.ViolationSeparator)
}

// writeGitHubOutput appends name=value to the GitHub Actions output file, switching to the
// delimited multi-line form when value spans lines.
func writeGitHubOutput(path, name, value string) error {
	var entry string
	if strings.ContainsAny(value, "\r\n") {
		delim := "ghadelimiter_" + uuid.NewString()
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
	} else {
		entry = fmt.Sprintf("%s=%s\n", name, value)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("%w: %v", sharedErrors.ErrOutputFileWrite, err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("%w: %v", sharedErrors.ErrOutputFileWrite, err)
	}
	return nil
}
