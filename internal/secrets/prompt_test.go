package secrets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptReturnsLineUnmodified(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  tok with spaces  \n"), &out, nil)

	got, err := p.Prompt("Token: ")
	require.NoError(t, err)
	assert.Equal(t, "  tok with spaces  ", got)
	assert.Equal(t, "Token: ", out.String())
}

func TestPromptStripsCRLF(t *testing.T) {
	p := NewPrompter(strings.NewReader("sk_xyz\r\n"), &bytes.Buffer{}, nil)
	got, err := p.Prompt("Key: ")
	require.NoError(t, err)
	assert.Equal(t, "sk_xyz", got)
}

func TestPromptEmptyLineNoReprompt(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nsecond\n"), &out, nil)

	got, err := p.Prompt("Key: ")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, 1, strings.Count(out.String(), "Key: "))
}

func TestPromptEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{}, nil)
	got, err := p.Prompt("Key: ")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	p = NewPrompter(strings.NewReader("no-newline"), &bytes.Buffer{}, nil)
	got, err = p.Prompt("Key: ")
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestPromptMaskFallsBackForPipedInput(t *testing.T) {
	p := NewPrompter(strings.NewReader("hidden\n"), &bytes.Buffer{}, nil)
	p.Mask = true
	got, err := p.Prompt("Key: ")
	require.NoError(t, err)
	assert.Equal(t, "hidden", got)
}

func TestCollectOrder(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("tok_abc\nsk_xyz\n"), &out, nil)

	creds, err := p.Collect(Credentials{})
	require.NoError(t, err)
	assert.Equal(t, Credentials{NgrokAuth: "tok_abc", OpenAIAPIKey: "sk_xyz"}, creds)
	assert.Equal(t, LabelNgrokAuth+LabelOpenAIAPIKey, out.String())
}

func TestCollectSkipsPresetFields(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("sk_typed\n"), &out, nil)

	creds, err := p.Collect(Credentials{NgrokAuth: "tok_flag"})
	require.NoError(t, err)
	assert.Equal(t, "tok_flag", creds.NgrokAuth)
	assert.Equal(t, "sk_typed", creds.OpenAIAPIKey)
	assert.NotContains(t, out.String(), LabelNgrokAuth)
}

func TestCollectNothingToPrompt(t *testing.T) {
	var out bytes.Buffer
	preset := Credentials{NgrokAuth: "a", OpenAIAPIKey: "b"}
	creds, err := NewPrompter(strings.NewReader(""), &out, nil).Collect(preset)
	require.NoError(t, err)
	assert.Equal(t, preset, creds)
	assert.Empty(t, out.String())
}
