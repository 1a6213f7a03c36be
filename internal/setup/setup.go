// Package setup runs the scaffold generator end to end: check tools, collect
// credentials, write the artifacts, print the usage summary. Each step runs
// only after the previous one succeeded.
package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/chatppt-labs/chatppt-setup/internal/prereq"
	"github.com/chatppt-labs/chatppt-setup/internal/scaffold"
	"github.com/chatppt-labs/chatppt-setup/internal/secrets"
	"github.com/chatppt-labs/chatppt-setup/internal/ui"
	"go.uber.org/zap"
)

// Step names one state of a run, in execution order.
type Step string

const (
	StepCheckTools        Step = "check-tools"
	StepPromptCredentials Step = "prompt-credentials"
	StepWriteArtifacts    Step = "write-artifacts"
	StepReport            Step = "report"
)

// Options configures a run. Zero values fall back to the process defaults.
type Options struct {
	Dir string

	// Credentials holds values supplied up front (flags, environment, config
	// file). Only empty fields are prompted for.
	Credentials secrets.Credentials
	Mask        bool

	In  io.Reader
	Out io.Writer
	Err io.Writer

	LookPath prereq.LookPathFunc
	Logger   *zap.Logger
}

func (o *Options) defaults() {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Run executes one scaffold run. A missing tool returns a
// *prereq.MissingPrerequisiteError before anything is prompted or written.
func Run(opts Options) (*scaffold.Result, error) {
	opts.defaults()
	log := opts.Logger

	log.Debug("entering step", zap.String("step", string(StepCheckTools)))
	if err := prereq.RequireTools(opts.LookPath, prereq.RequiredTools...); err != nil {
		return nil, err
	}

	log.Debug("entering step", zap.String("step", string(StepPromptCredentials)))
	prompter := secrets.NewPrompter(opts.In, opts.Out, log)
	prompter.Mask = opts.Mask
	creds, err := prompter.Collect(opts.Credentials)
	if err != nil {
		return nil, err
	}

	log.Debug("entering step", zap.String("step", string(StepWriteArtifacts)), zap.String("dir", opts.Dir))
	result, err := scaffold.NewGenerator(opts.Dir, log).Generate(creds)
	if err != nil {
		return nil, err
	}

	log.Debug("entering step", zap.String("step", string(StepReport)))
	for _, w := range result.Warnings {
		fmt.Fprintf(opts.Err, "%s %s\n", ui.Warn.Render("warning:"), w)
	}
	PrintReport(opts.Out)

	log.Info("scaffold complete", zap.String("dir", result.OutputDir), zap.Strings("files", result.Files))
	return result, nil
}

// usageHints are the three commands printed after a successful run.
var usageHints = [][2]string{
	{"Start the services:", "docker-compose up -d"},
	{"View the logs:", "docker-compose logs -f"},
	{"Stop the services:", "docker-compose down"},
}

// PrintReport writes the fixed usage summary.
func PrintReport(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.OK.Render("Setup complete!"))
	fmt.Fprintln(w, "Usage:")
	for _, h := range usageHints {
		fmt.Fprintf(w, "  %-20s %s\n", h[0], ui.Info.Render(h[1]))
	}
}
