package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Dockerfile")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\n"), 0644))

	require.NoError(t, WriteFile(path, []byte("new\n"), Overwrite, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))
}

func TestWriteFileAppendCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	require.NoError(t, WriteFile(path, []byte("one\n"), AppendOrCreate, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(data))
}

func TestWriteFileAppendKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	require.NoError(t, os.WriteFile(path, []byte("zero\n"), 0644))

	require.NoError(t, WriteFile(path, []byte("one\n"), AppendOrCreate, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "zero\none\n", string(data))
}

func TestWriteFileAppendNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list")
	require.NoError(t, os.WriteFile(path, []byte("zero"), 0644))

	require.NoError(t, WriteFile(path, []byte("one\n"), AppendOrCreate, 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "zero\none\n", string(data))
}

func TestWriteFileUnknownMode(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "x"), nil, Mode(42), 0644)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mode(42)")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "overwrite", Overwrite.String())
	assert.Equal(t, "append-or-create", AppendOrCreate.String())
}
