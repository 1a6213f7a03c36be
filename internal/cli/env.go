package cli

import (
	"fmt"
	"path/filepath"

	"github.com/chatppt-labs/chatppt-setup/internal/config"
	"github.com/chatppt-labs/chatppt-setup/internal/scaffold"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"github.com/spf13/cobra"
)

var envShowNoRedact bool

func init() {
	envShowCmd.Flags().BoolVar(&envShowNoRedact, "no-redact", false, "Show values without redaction")

	envCmd.AddCommand(envShowCmd)
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect the generated secrets file",
}

var envShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print .env contents (redacted by default)",
	Long: `Print the generated .env file with sensitive values redacted.

Use --no-redact to show actual values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(config.Get(config.KeyDir), scaffold.EnvFile)
		entries, err := secrets.ParseEnvFile(path)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(w, "(empty)")
			return nil
		}

		fmt.Fprintf(w, "# %s\n", path)
		for _, e := range entries {
			value := e.Value
			if !envShowNoRedact {
				value = secrets.RedactValue(e.Key, e.Value)
			}
			fmt.Fprintf(w, "%s=%s\n", e.Key, value)
		}
		return nil
	},
}
