package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/chatppt-labs/chatppt-setup/internal/compose"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"go.uber.org/zap"
)

// Generated file names, relative to the output directory.
const (
	EnvFile        = ".env"
	EnvExampleFile = ".env.example"
	DockerfileFile = "Dockerfile"
	ComposeFile    = "docker-compose.yml"
)

// File permissions. The secrets file is private to the owner.
const (
	FilePermSecure os.FileMode = 0600
	FilePermNormal os.FileMode = 0644
)

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir        string
	Files            []string
	GitignoreCreated bool
	Warnings         []string
}

// artifact is one overwritten output file.
type artifact struct {
	name     string
	template string // file under templates/, empty for the compose descriptor
	perm     os.FileMode
}

// artifacts lists the overwritten files in write order.
var artifacts = []artifact{
	{name: EnvFile, template: "env.tmpl", perm: FilePermSecure},
	{name: EnvExampleFile, template: "env.example.tmpl", perm: FilePermNormal},
	{name: DockerfileFile, template: "Dockerfile.tmpl", perm: FilePermNormal},
	{name: ComposeFile, perm: FilePermNormal},
}

// Generator writes the artifact set into one directory.
type Generator struct {
	dir    string
	logger *zap.Logger
}

// NewGenerator returns a Generator writing into dir.
func NewGenerator(dir string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{dir: dir, logger: logger}
}

// Generate writes .env, .env.example, Dockerfile and docker-compose.yml
// (overwriting), then updates .gitignore. The first failing write aborts the
// run; files written before it are left in place.
func (g *Generator) Generate(creds secrets.Credentials) (*Result, error) {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: g.dir}

	for _, a := range artifacts {
		content, err := render(a, creds)
		if err != nil {
			return nil, err
		}
		outPath := filepath.Join(g.dir, a.name)
		if err := WriteFile(outPath, content, Overwrite, a.perm); err != nil {
			return nil, err
		}
		g.logger.Debug("wrote artifact",
			zap.String("path", outPath),
			zap.Stringer("mode", Overwrite),
			zap.Int("bytes", len(content)))
		result.Files = append(result.Files, a.name)
	}

	created, err := UpdateGitignore(g.dir)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("updated gitignore", zap.Bool("created", created))
	result.Files = append(result.Files, GitignoreFile)
	result.GitignoreCreated = created

	// Validate the generated compose descriptor.
	valResult, valErr := compose.ValidateFile(filepath.Join(g.dir, ComposeFile))
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", ComposeFile, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	return result, nil
}

func render(a artifact, creds secrets.Credentials) ([]byte, error) {
	if a.template == "" {
		return compose.Render()
	}

	tmplPath := path.Join("templates", a.template)
	tmplBytes, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(a.template).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", a.template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, creds); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", a.template, err)
	}
	return buf.Bytes(), nil
}
