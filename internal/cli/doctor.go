package cli

import (
	"fmt"

	"github.com/chatppt-labs/chatppt-setup/internal/config"
	"github.com/chatppt-labs/chatppt-setup/internal/doctor"
	"github.com/spf13/cobra"
)

var (
	checkTools  bool
	checkDaemon bool
	checkFiles  bool
)

// newChecker is swapped in tests.
var newChecker = func() *doctor.Checker { return &doctor.Checker{} }

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify docker and docker-compose are installed and recent enough")
	doctorCmd.Flags().BoolVar(&checkDaemon, "check-daemon", false, "Verify the Docker daemon is reachable")
	doctorCmd.Flags().BoolVar(&checkFiles, "check-files", false, "Verify the generated deployment files")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the ChatPPT deployment setup",
	Long:  `Run diagnostic checks on the installed tools, the Docker daemon, and the generated files.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no specific flag, run all checks.
		all := !checkTools && !checkDaemon && !checkFiles

		c := newChecker()
		w := cmd.OutOrStdout()
		problems := 0

		if all || checkTools {
			problems += c.CheckTools(cmd.Context(), w)
		}
		if all || checkDaemon {
			problems += c.CheckDaemon(cmd.Context(), w)
		}
		if all || checkFiles {
			problems += c.CheckFiles(w, config.Get(config.KeyDir))
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}
