package cli

import (
	"fmt"
	"os"

	"github.com/chatppt-labs/chatppt-setup/internal/branding"
	"github.com/chatppt-labs/chatppt-setup/internal/config"
	"github.com/chatppt-labs/chatppt-setup/internal/prereq"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"github.com/chatppt-labs/chatppt-setup/internal/setup"
	"github.com/chatppt-labs/chatppt-setup/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logger *zap.Logger

	// lookPath resolves required tools; nil means exec.LookPath.
	lookPath prereq.LookPathFunc
)

var (
	debug        bool
	outputDir    string
	ngrokAuth    string
	openaiAPIKey string
	maskInput    bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log every step to stderr")
	rootCmd.PersistentFlags().StringVar(&outputDir, "dir", ".", "Directory to write the deployment files into")
	rootCmd.Flags().StringVar(&ngrokAuth, "ngrok-auth", "", "ngrok authtoken (prompted for when empty)")
	rootCmd.Flags().StringVar(&openaiAPIKey, "openai-api-key", "", "OpenAI API key (prompted for when empty)")
	rootCmd.Flags().BoolVar(&maskInput, "mask", false, "Hide typed secrets when reading from a terminal")
}

// bindFlags lets flags take precedence over the environment and the config file.
func bindFlags(root *cobra.Command) {
	_ = viper.BindPFlag(config.KeyDir, root.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag(config.KeyNgrokAuth, root.Flags().Lookup("ngrok-auth"))
	_ = viper.BindPFlag(config.KeyOpenAIAPIKey, root.Flags().Lookup("openai-api-key"))
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` checks that docker and docker-compose are installed, asks for
your ngrok authtoken and OpenAI API key, and writes .env, .env.example,
Dockerfile and docker-compose.yml for running ChatPPT locally. It also adds
the secrets files to .gitignore.

Values already given with --ngrok-auth/--openai-api-key, the
CHATPPT_SETUP_NGROK_AUTH/CHATPPT_SETUP_OPENAI_API_KEY environment variables,
or the config file are not prompted for.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		bindFlags(cmd.Root())
		var err error
		logger, err = newLogger(debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	_, err := setup.Run(setup.Options{
		Dir: config.Get(config.KeyDir),
		Credentials: secrets.Credentials{
			NgrokAuth:    config.Get(config.KeyNgrokAuth),
			OpenAIAPIKey: config.Get(config.KeyOpenAIAPIKey),
		},
		Mask:     maskInput,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		LookPath: lookPath,
		Logger:   logger,
	})
	return err
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed here because the root command silences Cobra's own reporting.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Error.Render("Error:"), err)
	}
	return err
}
