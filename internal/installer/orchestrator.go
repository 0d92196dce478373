// internal/installer/orchestrator.go
package installer

import (
	"context"
	"strings"

	"archlink/internal/core/domain"
	"archlink/internal/platform/errors"
	"archlink/internal/platform/logx"
)

// Reporter receives operator-facing progress messages during installation.
type Reporter interface {
	// Attempting announces the command about to run. Installers may prompt
	// for a password, so the operator needs to know what is asking.
	Attempting(command string)

	// Installed announces a successful installation.
	Installed(pkg, program string)

	// AttemptFailed announces one installer's failure before the chain
	// moves on.
	AttemptFailed(program string, err error)
}

type noopReporter struct{}

func (noopReporter) Attempting(string)           {}
func (noopReporter) Installed(string, string)    {}
func (noopReporter) AttemptFailed(string, error) {}

// Orchestrator tries a prioritized sequence of installer programs until one
// succeeds or the chain is exhausted. It runs once per invocation and keeps
// no state between runs.
type Orchestrator struct {
	runner    Runner
	reporter  Reporter
	logger    logx.Logger
	primary   Program
	fallbacks []Program
}

// defaultPrimary is the system package manager, run with privilege elevation
// and a non-interactive flag.
var defaultPrimary = Program{
	Name:         "pacman",
	Cmd:          "sudo",
	Args:         []string{"pacman", "-S"},
	TrailingArgs: []string{"--noconfirm"},
}

// defaultFallbacks are the AUR helpers, tried in priority order. Each is
// probed for existence before being attempted.
var defaultFallbacks = []Program{
	{Name: "yay", Cmd: "yay", Args: []string{"-S"}, RequiresProbe: true},
	{Name: "paru", Cmd: "paru", Args: []string{"-S"}, RequiresProbe: true},
}

// Options configures an Orchestrator. Zero values select the defaults.
type Options struct {
	Runner    Runner
	Reporter  Reporter
	Logger    logx.Logger
	Primary   *Program
	Fallbacks []Program
}

// NewOrchestrator creates an installation orchestrator.
func NewOrchestrator(opts Options) *Orchestrator {
	if opts.Runner == nil {
		opts.Runner = NewRunner()
	}
	if opts.Reporter == nil {
		opts.Reporter = noopReporter{}
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	primary := defaultPrimary
	if opts.Primary != nil {
		primary = *opts.Primary
	}
	fallbacks := opts.Fallbacks
	if fallbacks == nil {
		fallbacks = defaultFallbacks
	}

	return &Orchestrator{
		runner:    opts.Runner,
		reporter:  opts.Reporter,
		logger:    opts.Logger.With("component", "installer"),
		primary:   primary,
		fallbacks: fallbacks,
	}
}

// Install attempts to install the named package. For official and unknown
// sources the primary system manager runs first; its failure is recorded and
// the chain continues into the AUR helpers regardless of the claimed source,
// so a misclassified package can still be found. Each attempt spawns one
// process synchronously with inherited stdio and no timeout: installation
// may legitimately take arbitrary time, including interactive prompts. Only
// exhaustion of the whole chain is an error.
func (o *Orchestrator) Install(ctx context.Context, pkg string, source domain.Source) error {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return errors.Wrap(errors.ErrInvalidInput, "package name cannot be empty")
	}

	attempted := make([]string, 0, 1+len(o.fallbacks))

	if source == domain.SourceOfficial || source == domain.SourceUnknown {
		if o.attempt(ctx, o.primary, pkg, &attempted) {
			return nil
		}
	}

	for _, program := range o.fallbacks {
		if program.RequiresProbe && !o.runner.LookPath(program.Name) {
			o.logger.Debug("installer not present, skipping", "program", program.Name)
			continue
		}
		if o.attempt(ctx, program, pkg, &attempted) {
			return nil
		}
	}

	o.logger.Warn("all install attempts failed",
		"package", pkg,
		"attempted", strings.Join(attempted, ","),
	)
	return &ExhaustionError{Package: pkg, Attempted: attempted}
}

// attempt runs one installer and reports whether it succeeded. The program
// is recorded as attempted strictly because it was invoked; a non-zero exit
// or spawn failure only advances the chain.
func (o *Orchestrator) attempt(ctx context.Context, program Program, pkg string, attempted *[]string) bool {
	*attempted = append(*attempted, program.Name)
	o.reporter.Attempting(program.CommandLine(pkg))

	args := append([]string{}, program.Args...)
	args = append(args, pkg)
	args = append(args, program.TrailingArgs...)

	if err := o.runner.Run(ctx, program.Cmd, args...); err != nil {
		o.logger.Warn("install attempt failed",
			"program", program.Name,
			"package", pkg,
			"error", err.Error(),
		)
		o.reporter.AttemptFailed(program.Name, err)
		return false
	}

	o.logger.Info("package installed", "program", program.Name, "package", pkg)
	o.reporter.Installed(pkg, program.Name)
	return true
}
