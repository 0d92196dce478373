// internal/installer/detector.go
package installer

import (
	"context"
	"os"
	"os/exec"
)

// Runner abstracts process probing and spawning so the fallback chain can be
// tested without touching the host.
type Runner interface {
	// LookPath reports whether a command is available in PATH. This is an
	// existence probe only, not a version or capability check.
	LookPath(name string) bool

	// Run spawns the command and waits for it synchronously. Stdio is
	// inherited from the parent: installers may prompt for passwords or
	// confirmations and their interaction must stay visible, never
	// captured or buffered.
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

// NewRunner returns the Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
