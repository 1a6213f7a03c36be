package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chatppt-labs/chatppt-setup/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys. Each can also be supplied through the
// environment as <PREFIX>_<KEY>, e.g. CHATPPT_SETUP_NGROK_AUTH.
const (
	KeyNgrokAuth    = "ngrok_auth"
	KeyOpenAIAPIKey = "openai_api_key"
	KeyDir          = "dir"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyNgrokAuth, KeyOpenAIAPIKey, KeyDir}

// Dir returns the path to the config directory (~/.chatppt-setup/).
// CHATPPT_SETUP_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyDir, ".")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown key %q (valid keys: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist. It can hold credentials, so keep it private.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.OpenFile(configFile, os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
