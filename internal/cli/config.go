package cli

import (
	"fmt"

	"github.com/chatppt-labs/chatppt-setup/internal/config"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write defaults stored at ~/.chatppt-setup/config.yaml.

Keys: ngrok_auth, openai_api_key, dir.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, secrets.RedactValue(key, value))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting with secrets redacted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# %s\n", config.FilePath())
		for _, key := range config.Keys {
			fmt.Fprintf(w, "%s=%s\n", key, secrets.RedactValue(key, config.Get(key)))
		}
		return nil
	},
}
