package prereq

import (
	"fmt"
	"os/exec"
)

// Tool names checked before any file is written, in check order.
const (
	Docker        = "docker"
	DockerCompose = "docker-compose"
)

// RequiredTools is the ordered list of executables the generated build and
// compose descriptors need.
var RequiredTools = []string{Docker, DockerCompose}

// LookPathFunc resolves an executable name to a path. exec.LookPath is the
// production implementation.
type LookPathFunc func(name string) (string, error)

// MissingPrerequisiteError reports a required executable absent from PATH.
type MissingPrerequisiteError struct {
	Tool string
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("%s is not installed. Please install %s first", e.Tool, e.Tool)
}

// RequireTool returns a *MissingPrerequisiteError if name is not on PATH.
func RequireTool(name string) error {
	return requireTool(exec.LookPath, name)
}

// RequireTools checks names in order and stops at the first missing tool,
// so later tools are never looked up once one is absent.
func RequireTools(lookPath LookPathFunc, names ...string) error {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, name := range names {
		if err := requireTool(lookPath, name); err != nil {
			return err
		}
	}
	return nil
}

func requireTool(lookPath LookPathFunc, name string) error {
	if _, err := lookPath(name); err != nil {
		return &MissingPrerequisiteError{Tool: name}
	}
	return nil
}
