// internal/platform/ui/presenter.go
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"archlink/internal/core/domain"
)

// Presenter renders the search and install flows to the terminal. It also
// implements the installer's progress reporting.
type Presenter struct {
	out    io.Writer
	errOut io.Writer
	in     *bufio.Reader
}

// NewPresenter creates a presenter bound to stdout/stderr/stdin.
func NewPresenter() *Presenter {
	return &Presenter{
		out:    os.Stdout,
		errOut: os.Stderr,
		in:     bufio.NewReader(os.Stdin),
	}
}

// NewPresenterWith creates a presenter with explicit streams. Warnings and
// errors share the output writer.
func NewPresenterWith(out io.Writer, in io.Reader) *Presenter {
	return &Presenter{
		out:    out,
		errOut: out,
		in:     bufio.NewReader(in),
	}
}

// ShowSearching announces the query before the sources run.
func (p *Presenter) ShowSearching(query string) {
	fmt.Fprintf(p.out, "Searching for %s...\n", StyleName.Sprint(query))
}

// ShowResults prints the ranked result list, best match first.
func (p *Presenter) ShowResults(packages []domain.Package) {
	fmt.Fprintln(p.out)
	for i, pkg := range packages {
		fmt.Fprintf(p.out, "%s %s %s - %s %s\n",
			StyleRank.Sprintf("%d.", i+1),
			StyleName.Sprint(pkg.Name),
			StyleVersion.Sprint(pkg.Version),
			pkg.Description,
			StyleSource.Sprintf("[%s]", pkg.Source),
		)
	}
	fmt.Fprintln(p.out)
}

// ShowNoResults reports an empty search outcome.
func (p *Presenter) ShowNoResults(query string) {
	fmt.Fprintf(p.out, "No packages found for %q.\n", query)
}

// ShowWarning reports a degraded condition, e.g. a source that failed while
// the other still answered.
func (p *Presenter) ShowWarning(msg string) {
	fmt.Fprintln(p.errOut, StyleWarning.Sprint("warning: ")+msg)
}

// ShowError reports a failure.
func (p *Presenter) ShowError(msg string) {
	fmt.Fprintln(p.errOut, StyleError.Sprint("error: ")+msg)
}

// PromptSelection asks the operator to pick one of n listed packages.
// It returns the zero-based index, or ok=false when the operator aborts
// (0, empty input, or EOF). Out-of-range and non-numeric input re-prompts.
func (p *Presenter) PromptSelection(n int) (int, bool) {
	for {
		fmt.Fprintf(p.out, "Select a package to install [1-%d, 0 to cancel]: ", n)

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, false
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "0" {
			return 0, false
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil || choice < 1 || choice > n {
			p.ShowWarning(fmt.Sprintf("enter a number between 1 and %d", n))
			continue
		}
		return choice - 1, true
	}
}

// PromptConfirm asks a yes/no question, defaulting to no.
func (p *Presenter) PromptConfirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Attempting implements installer progress reporting: the command is shown
// verbatim because it may prompt for a password.
func (p *Presenter) Attempting(command string) {
	fmt.Fprintf(p.out, "Running %s\n", StyleMuted.Sprint(command))
}

// Installed implements installer progress reporting.
func (p *Presenter) Installed(pkg, program string) {
	fmt.Fprintln(p.out, StyleSuccess.Sprintf("Installed %s", pkg)+StyleMuted.Sprintf(" (via %s)", program))
}

// AttemptFailed implements installer progress reporting.
func (p *Presenter) AttemptFailed(program string, err error) {
	p.ShowWarning(fmt.Sprintf("%s failed, trying next installer", program))
}
