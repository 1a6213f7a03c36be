package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// GitignoreFile is the ignore-list file updated by every run.
const GitignoreFile = ".gitignore"

// gitignoreAppend is added to an existing .gitignore.
const gitignoreAppend = `.env
.env.local
`

// gitignoreCreate seeds a new .gitignore with the secret-file patterns plus
// Python bytecode and cache patterns.
const gitignoreCreate = `.env
.env.local
__pycache__/
*.pyc
`

// UpdateGitignore appends the secret-file ignore patterns to dir/.gitignore,
// or creates the file when absent. Existing entries are not inspected, so a
// repeated run appends the two lines again.
func UpdateGitignore(dir string) (created bool, err error) {
	path := filepath.Join(dir, GitignoreFile)

	content := gitignoreAppend
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		content = gitignoreCreate
		created = true
	} else if statErr != nil {
		return false, fmt.Errorf("checking %s: %w", path, statErr)
	}

	if err := WriteFile(path, []byte(content), AppendOrCreate, 0644); err != nil {
		return false, err
	}
	return created, nil
}
