// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "chatppt-setup",
			DisplayName: "ChatPPT Setup",
			Description: "Scaffold local Docker deployment files for ChatPPT",
			HomeDir:     ".chatppt-setup",
			EnvPrefix:   "CHATPPT_SETUP",
			GoModule:    "github.com/chatppt-labs/chatppt-setup",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "chatppt-setup").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".chatppt-setup").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CHATPPT_SETUP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("dir") → "CHATPPT_SETUP_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
