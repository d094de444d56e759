package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information, injected at build time via -ldflags. Unset values fall back to the
// module and VCS data the Go toolchain embeds.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type buildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func currentBuild() buildInfo {
	b := buildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if b.GitCommit == "unknown" {
				b.GitCommit = setting.Value
			}
		case "vcs.time":
			if b.BuildDate == "unknown" {
				b.BuildDate = setting.Value
			}
		}
	}
	return b
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		b := currentBuild()
		out := cmd.OutOrStdout()

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(b)
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			_, err := fmt.Fprintf(out, "gqlaudit %s\n  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s\n",
				b.Version, b.GitCommit, b.BuildDate, b.GoVersion, b.Platform)
			return err
		}
		_, err := fmt.Fprintf(out, "gqlaudit %s\n", b.Version)
		return err
	},
}

// userAgent identifies audit requests in the endpoint's access logs.
func userAgent() string {
	return "gqlaudit/" + currentBuild().Version
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "show commit, build date and toolchain")
	versionCmd.Flags().Bool("json", false, "print build information as JSON")
}
