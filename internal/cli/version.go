package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/chatppt-labs/chatppt-setup/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

type versionInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Name:      branding.CLIName(),
		Version:   buildVersion,
		Commit:    buildCommit,
		Date:      buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersion()
		w := cmd.OutOrStdout()

		switch {
		case versionShort:
			fmt.Fprintln(w, info.Version)
		case versionJSON:
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(w, string(out))
		default:
			fmt.Fprintf(w, "%s version %s (commit: %s, built: %s, %s %s)\n",
				info.Name, info.Version, info.Commit, info.Date, info.GoVersion, info.Platform)
		}
		return nil
	},
}
