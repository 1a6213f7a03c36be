package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/chatppt-labs/chatppt-setup/internal/prereq"
	"github.com/chatppt-labs/chatppt-setup/internal/scaffold"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeChecker(found map[string]string) *Checker {
	return &Checker{
		LookPath: func(name string) (string, error) {
			if _, ok := found[name]; ok {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		},
		Run: func(_ context.Context, name string, _ ...string) ([]byte, error) {
			return []byte(found[name]), nil
		},
		Ping: func(context.Context) (*prereq.DaemonInfo, error) {
			return &prereq.DaemonInfo{APIVersion: "1.45", OSType: "linux"}, nil
		},
	}
}

func TestCheckToolsAllGood(t *testing.T) {
	c := fakeChecker(map[string]string{
		prereq.Docker:        "Docker version 24.0.7, build afdd53b",
		prereq.DockerCompose: "Docker Compose version v2.20.2",
	})
	var buf bytes.Buffer
	assert.Equal(t, 0, c.CheckTools(context.Background(), &buf))
	assert.Contains(t, buf.String(), "docker 24.0.7 found at /usr/bin/docker")
	assert.Contains(t, buf.String(), "docker-compose 2.20.2 found")
}

func TestCheckToolsMissingAndOld(t *testing.T) {
	c := fakeChecker(map[string]string{
		prereq.Docker: "Docker version 18.09.7, build 2d0083d",
	})
	var buf bytes.Buffer
	assert.Equal(t, 1, c.CheckTools(context.Background(), &buf))
	assert.Contains(t, buf.String(), "[MISS]")
	assert.Contains(t, buf.String(), "docker-compose not found")
	assert.Contains(t, buf.String(), "does not satisfy >= 19.3.0")
}

func TestCheckToolsUnknownVersion(t *testing.T) {
	c := fakeChecker(map[string]string{
		prereq.Docker:        "garbage",
		prereq.DockerCompose: "docker-compose version 1.29.2",
	})
	var buf bytes.Buffer
	assert.Equal(t, 0, c.CheckTools(context.Background(), &buf))
	assert.Contains(t, buf.String(), "version unknown")
}

func TestCheckDaemon(t *testing.T) {
	c := fakeChecker(nil)
	var buf bytes.Buffer
	assert.Equal(t, 0, c.CheckDaemon(context.Background(), &buf))
	assert.Contains(t, buf.String(), "API 1.45, linux")

	c.Ping = func(ctx context.Context) (*prereq.DaemonInfo, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil, errors.New("connection refused")
	}
	buf.Reset()
	assert.Equal(t, 1, c.CheckDaemon(context.Background(), &buf))
	assert.Contains(t, buf.String(), "[FAIL]")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestCheckFilesAfterGenerate(t *testing.T) {
	dir := t.TempDir()
	_, err := scaffold.NewGenerator(dir, nil).Generate(secrets.Credentials{NgrokAuth: "tok_abc", OpenAIAPIKey: "sk_xyz"})
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Equal(t, 0, (&Checker{}).CheckFiles(&buf, dir), buf.String())
	assert.Contains(t, buf.String(), "docker-compose.yml is valid")
	assert.Contains(t, buf.String(), ".gitignore ignores .env")
	assert.NotContains(t, buf.String(), "[WARN]")
}

func TestCheckFilesEmptyDir(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 5, (&Checker{}).CheckFiles(&buf, t.TempDir()))
}

func TestCheckFilesEmptySecretsAndLoosePermissions(t *testing.T) {
	dir := t.TempDir()
	_, err := scaffold.NewGenerator(dir, nil).Generate(secrets.Credentials{NgrokAuth: "tok_abc"})
	require.NoError(t, err)

	envPath := filepath.Join(dir, scaffold.EnvFile)
	require.NoError(t, os.Chmod(envPath, 0644))

	var buf bytes.Buffer
	assert.Equal(t, 1, (&Checker{}).CheckFiles(&buf, dir))
	assert.Contains(t, buf.String(), "OPENAI_API_KEY is not set")
	if runtime.GOOS != "windows" {
		assert.Contains(t, buf.String(), "has permissions 644")
	}
}

func TestCheckFilesInvalidCompose(t *testing.T) {
	dir := t.TempDir()
	_, err := scaffold.NewGenerator(dir, nil).Generate(secrets.Credentials{NgrokAuth: "a", OpenAIAPIKey: "b"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, scaffold.ComposeFile),
		[]byte("services:\n  app:\n    restart: sometimes\n"), 0644))

	var buf bytes.Buffer
	assert.Equal(t, 1, (&Checker{}).CheckFiles(&buf, dir))
	assert.Contains(t, buf.String(), "validation issue")
}
