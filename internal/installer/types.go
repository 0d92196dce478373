// Package installer orchestrates package installation through an ordered
// chain of external installer programs, tolerating individual failures and
// reporting exactly which programs were attempted.
package installer

import (
	"fmt"
	"strings"
)

// Program describes one external installer in the fallback chain.
type Program struct {
	// Name is the installer recorded in the attempted list and probed in
	// PATH. It is the program the operator knows ("pacman", "yay").
	Name string

	// Cmd is the executable actually spawned. Differs from Name when the
	// installer needs privilege elevation ("sudo" wrapping pacman).
	Cmd string

	// Args are the fixed arguments placed before the package name.
	Args []string

	// TrailingArgs are appended after the package name (pacman's
	// --noconfirm).
	TrailingArgs []string

	// RequiresProbe marks fallback installers that must be found in PATH
	// before being attempted. The primary manager is always attempted.
	RequiresProbe bool
}

// CommandLine renders the full invocation for a given package, for operator
// display.
func (p Program) CommandLine(pkg string) string {
	parts := append([]string{p.Cmd}, p.Args...)
	parts = append(parts, pkg)
	parts = append(parts, p.TrailingArgs...)
	return strings.Join(parts, " ")
}

// ExhaustionError is returned when every attempted installer failed. The
// Attempted list names exactly the programs that ran, in invocation order;
// never programs that were merely probed or configured.
type ExhaustionError struct {
	Package   string
	Attempted []string
}

func (e *ExhaustionError) Error() string {
	attempted := "none"
	if len(e.Attempted) > 0 {
		attempted = strings.Join(e.Attempted, ", ")
	}
	return fmt.Sprintf("failed to install %q (attempted: %s); install yay or paru, or check the package name",
		e.Package, attempted)
}
