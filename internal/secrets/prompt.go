package secrets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Prompter reads single-line answers from an input stream.
type Prompter struct {
	in     *bufio.Reader
	file   *os.File // set when the input is a file, for terminal detection
	out    io.Writer
	logger *zap.Logger

	// Mask hides typed input when the input is a terminal. Piped input is
	// read as plain lines regardless.
	Mask bool
}

// NewPrompter returns a Prompter reading from r and writing labels to w.
func NewPrompter(r io.Reader, w io.Writer, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Prompter{
		in:     bufio.NewReader(r),
		out:    w,
		logger: logger,
	}
	if f, ok := r.(*os.File); ok {
		p.file = f
	}
	return p
}

// Prompt displays label and returns one line of input without its line
// terminator. Empty input is returned as-is; there is no re-prompt. End of
// input with nothing typed yields an empty string.
func (p *Prompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if p.Mask && p.file != nil && term.IsTerminal(int(p.file.Fd())) {
		b, err := term.ReadPassword(int(p.file.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("reading masked input: %w", err)
		}
		p.logger.Debug("read masked input", zap.String("label", label), zap.Int("length", len(b)))
		return string(b), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		p.logger.Warn("empty input received", zap.String("label", label))
	}
	p.logger.Debug("read input", zap.String("label", label), zap.Int("length", len(line)))
	return line, nil
}

// Collect fills in the empty fields of preset by prompting, ngrok auth token
// first and OpenAI API key second. Fields already set are not prompted for.
func (p *Prompter) Collect(preset Credentials) (Credentials, error) {
	creds := preset
	if creds.NgrokAuth == "" {
		v, err := p.Prompt(LabelNgrokAuth)
		if err != nil {
			return Credentials{}, fmt.Errorf("prompting for ngrok authtoken: %w", err)
		}
		creds.NgrokAuth = v
	}
	if creds.OpenAIAPIKey == "" {
		v, err := p.Prompt(LabelOpenAIAPIKey)
		if err != nil {
			return Credentials{}, fmt.Errorf("prompting for OpenAI API key: %w", err)
		}
		creds.OpenAIAPIKey = v
	}
	return creds, nil
}
