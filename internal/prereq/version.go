package prereq

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinVersions holds the minimum versions that understand compose file
// format 3.8, which the generated docker-compose.yml declares.
var MinVersions = map[string]string{
	Docker:        ">= 19.3.0",
	DockerCompose: ">= 1.25.5",
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// RunFunc executes a command and returns its combined output.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s %s: %w", name, strings.Join(args, " "), err)
	}
	return out.Bytes(), nil
}

// ProbeVersion runs "<tool> --version" and parses the first version number
// in its output.
func ProbeVersion(ctx context.Context, run RunFunc, tool string) (*semver.Version, error) {
	if run == nil {
		run = runCommand
	}
	out, err := run(ctx, tool, "--version")
	if err != nil {
		return nil, err
	}
	return ParseVersionOutput(string(out))
}

// ParseVersionOutput extracts a version from free-form "--version" output such
// as "Docker version 24.0.7, build afdd53b" or "Docker Compose version v2.20.2".
// Zero-padded components ("19.03") are accepted.
func ParseVersionOutput(out string) (*semver.Version, error) {
	match := versionPattern.FindString(out)
	if match == "" {
		return nil, fmt.Errorf("no version number in %q", strings.TrimSpace(out))
	}
	v, err := semver.NewVersion(trimLeadingZeros(match))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", match, err)
	}
	return v, nil
}

// CheckConstraint reports whether v satisfies constraint.
func CheckConstraint(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

func trimLeadingZeros(v string) string {
	parts := strings.Split(v, ".")
	for i, p := range parts {
		p = strings.TrimLeft(p, "0")
		if p == "" {
			p = "0"
		}
		parts[i] = p
	}
	return strings.Join(parts, ".")
}
