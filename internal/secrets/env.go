package secrets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// EnvEntry represents a single key-value pair from a .env file.
type EnvEntry struct {
	Key   string
	Value string
}

// ParseEnvFile reads a .env file and returns its entries sorted by key.
func ParseEnvFile(path string) ([]EnvEntry, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]EnvEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, EnvEntry{Key: k, Value: values[k]})
	}
	return entries, nil
}

// LoadCredentials reads the credential pair back from a generated .env file.
func LoadCredentials(path string) (Credentials, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return Credentials{
		NgrokAuth:    values[EnvNgrokAuth],
		OpenAIAPIKey: values[EnvOpenAIAPIKey],
	}, nil
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "AUTH", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ chars show the first 4 chars + "***".
// Values with fewer than 4 chars are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
