package prereq

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"Docker version 24.0.7, build afdd53b", "24.0.7"},
		{"Docker version 19.03.13, build 4484c46d9d", "19.3.13"},
		{"Docker Compose version v2.20.2", "2.20.2"},
		{"docker-compose version 1.29.2, build 5becea4c", "1.29.2"},
		{"docker-compose version 1.25", "1.25.0"},
	}
	for _, tt := range tests {
		v, err := ParseVersionOutput(tt.out)
		require.NoError(t, err, tt.out)
		assert.Equal(t, tt.want, v.String(), tt.out)
	}
}

func TestParseVersionOutputNoNumber(t *testing.T) {
	_, err := ParseVersionOutput("command not found")
	assert.Error(t, err)
}

func TestCheckConstraint(t *testing.T) {
	tests := []struct {
		tool    string
		version string
		ok      bool
	}{
		{Docker, "Docker version 24.0.7", true},
		{Docker, "Docker version 19.03.0", true},
		{Docker, "Docker version 18.09.7", false},
		{DockerCompose, "docker-compose version 1.25.5", true},
		{DockerCompose, "docker-compose version 1.24.1", false},
		{DockerCompose, "Docker Compose version v2.20.2", true},
	}
	for _, tt := range tests {
		v, err := ParseVersionOutput(tt.version)
		require.NoError(t, err)
		ok, err := CheckConstraint(v, MinVersions[tt.tool])
		require.NoError(t, err)
		assert.Equal(t, tt.ok, ok, "%s %s", tt.tool, tt.version)
	}
}

func TestCheckConstraintInvalid(t *testing.T) {
	v, err := ParseVersionOutput("1.0.0")
	require.NoError(t, err)
	_, err = CheckConstraint(v, ">>> nope")
	assert.Error(t, err)
}

func TestProbeVersion(t *testing.T) {
	var gotName string
	var gotArgs []string
	run := func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte("Docker version 25.0.3, build 4debf41\n"), nil
	}

	v, err := ProbeVersion(context.Background(), run, Docker)
	require.NoError(t, err)
	assert.Equal(t, "25.0.3", v.String())
	assert.Equal(t, Docker, gotName)
	assert.Equal(t, []string{"--version"}, gotArgs)
}

func TestProbeVersionRunError(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 127")
	}
	_, err := ProbeVersion(context.Background(), run, Docker)
	assert.Error(t, err)
}
