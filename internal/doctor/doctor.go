// Package doctor runs diagnostic checks on a scaffolded ChatPPT deployment:
// tool presence and versions, Docker daemon reachability, and the generated
// files. Each check writes status lines and returns the number of problems.
package doctor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chatppt-labs/chatppt-setup/internal/compose"
	"github.com/chatppt-labs/chatppt-setup/internal/platform"
	"github.com/chatppt-labs/chatppt-setup/internal/prereq"
	"github.com/chatppt-labs/chatppt-setup/internal/scaffold"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"github.com/chatppt-labs/chatppt-setup/internal/ui"
)

// DaemonTimeout bounds the Docker daemon ping.
const DaemonTimeout = 5 * time.Second

// Checker holds the probes used by the checks. Nil fields use the real
// implementations.
type Checker struct {
	LookPath prereq.LookPathFunc
	Run      prereq.RunFunc
	Ping     func(ctx context.Context) (*prereq.DaemonInfo, error)
}

// CheckTools verifies each required tool is on PATH and meets its minimum
// version. A missing tool is a problem; an old or unparseable version is a
// warning.
func (c *Checker) CheckTools(ctx context.Context, w io.Writer) int {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	fmt.Fprintln(w, "Tools check:")
	problems := 0
	for _, tool := range prereq.RequiredTools {
		path, err := lookPath(tool)
		if err != nil {
			ui.Statusf(w, ui.TagMiss, "%s not found", tool)
			problems++
			continue
		}

		v, err := prereq.ProbeVersion(ctx, c.Run, tool)
		if err != nil {
			ui.Statusf(w, ui.TagWarn, "%s found at %s, version unknown: %v", tool, path, err)
			continue
		}

		constraint := prereq.MinVersions[tool]
		ok, err := prereq.CheckConstraint(v, constraint)
		switch {
		case err != nil:
			ui.Statusf(w, ui.TagWarn, "%s %s: %v", tool, v, err)
		case !ok:
			ui.Statusf(w, ui.TagWarn, "%s %s does not satisfy %s", tool, v, constraint)
		default:
			ui.Statusf(w, ui.TagOK, "%s %s found at %s", tool, v, path)
		}
	}
	return problems
}

// CheckDaemon pings the Docker daemon.
func (c *Checker) CheckDaemon(ctx context.Context, w io.Writer) int {
	ping := c.Ping
	if ping == nil {
		ping = prereq.PingDaemon
	}

	fmt.Fprintln(w, "Docker daemon check:")
	ctx, cancel := context.WithTimeout(ctx, DaemonTimeout)
	defer cancel()

	info, err := ping(ctx)
	if err != nil {
		ui.Statusf(w, ui.TagFail, "daemon unreachable: %v", err)
		return 1
	}
	ui.Statusf(w, ui.TagOK, "daemon reachable (API %s, %s)", info.APIVersion, info.OSType)
	return 0
}

// CheckFiles inspects the artifacts generated in dir.
func (c *Checker) CheckFiles(w io.Writer, dir string) int {
	fmt.Fprintf(w, "Generated files check (%s):\n", dir)
	problems := 0

	for _, name := range []string{scaffold.EnvFile, scaffold.EnvExampleFile, scaffold.DockerfileFile, scaffold.ComposeFile, scaffold.GitignoreFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			ui.Statusf(w, ui.TagMiss, "%s not found", name)
			problems++
			continue
		}
		ui.Statusf(w, ui.TagOK, "%s exists", name)
	}

	problems += checkEnv(w, filepath.Join(dir, scaffold.EnvFile))
	problems += checkCompose(w, filepath.Join(dir, scaffold.ComposeFile))
	checkGitignore(w, filepath.Join(dir, scaffold.GitignoreFile))
	return problems
}

func checkEnv(w io.Writer, path string) int {
	if _, err := os.Stat(path); err != nil {
		return 0 // already reported
	}

	ok, perm, err := platform.CheckMode(path, scaffold.FilePermSecure)
	if err != nil {
		ui.Statusf(w, ui.TagFail, "%v", err)
		return 1
	}
	if !ok {
		ui.Statusf(w, ui.TagWarn, "%s has permissions %o (expected %o)", scaffold.EnvFile, perm, scaffold.FilePermSecure)
	}

	creds, err := secrets.LoadCredentials(path)
	if err != nil {
		ui.Statusf(w, ui.TagFail, "%v", err)
		return 1
	}
	problems := 0
	for _, kv := range [][2]string{
		{secrets.EnvNgrokAuth, creds.NgrokAuth},
		{secrets.EnvOpenAIAPIKey, creds.OpenAIAPIKey},
	} {
		if kv[1] == "" {
			ui.Statusf(w, ui.TagWarn, "%s is not set in %s", kv[0], scaffold.EnvFile)
			problems++
		}
	}
	if problems == 0 {
		ui.Statusf(w, ui.TagOK, "%s sets %s and %s", scaffold.EnvFile, secrets.EnvNgrokAuth, secrets.EnvOpenAIAPIKey)
	}
	return problems
}

func checkCompose(w io.Writer, path string) int {
	result, err := compose.ValidateFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0 // already reported
		}
		ui.Statusf(w, ui.TagFail, "%v", err)
		return 1
	}
	if result.Valid {
		ui.Statusf(w, ui.TagOK, "%s is valid", scaffold.ComposeFile)
		return 0
	}
	ui.Statusf(w, ui.TagFail, "%s has %d validation issue(s):", scaffold.ComposeFile, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return 1
}

func checkGitignore(w io.Writer, path string) {
	f, err := os.Open(path)
	if err != nil {
		return // already reported
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == scaffold.EnvFile {
			ui.Statusf(w, ui.TagOK, "%s ignores %s", scaffold.GitignoreFile, scaffold.EnvFile)
			return
		}
	}
	ui.Statusf(w, ui.TagWarn, "%s does not ignore %s; secrets may be committed", scaffold.GitignoreFile, scaffold.EnvFile)
}
