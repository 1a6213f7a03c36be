package scaffold

import (
	"fmt"
	"os"

	"github.com/chatppt-labs/chatppt-setup/internal/platform"
)

// Mode selects how WriteFile treats an existing file.
type Mode int

const (
	// Overwrite replaces the whole file.
	Overwrite Mode = iota
	// AppendOrCreate appends to an existing file or creates it.
	AppendOrCreate
)

func (m Mode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case AppendOrCreate:
		return "append-or-create"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// WriteFile writes content to path according to mode. Overwrite also resets
// the permission bits to perm, since os.WriteFile keeps the mode of an
// existing file. AppendOrCreate inserts a newline first when the existing file
// does not end with one, so appended lines never merge into the last line.
// Writes are not atomic.
func WriteFile(path string, content []byte, mode Mode, perm os.FileMode) error {
	switch mode {
	case Overwrite:
		if err := os.WriteFile(path, content, perm); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := platform.Chmod(path, perm); err != nil {
			return fmt.Errorf("setting permissions on %s: %w", path, err)
		}
		return nil
	case AppendOrCreate:
		return appendFile(path, content, perm)
	default:
		return fmt.Errorf("writing %s: unknown mode %s", path, mode)
	}
}

func appendFile(path string, content []byte, perm os.FileMode) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	data := content
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		data = append([]byte("\n"), content...)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("opening %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return nil
}
