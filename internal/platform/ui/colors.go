// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Terminal styles for the search and install flows.
var (
	// StyleName - package names in result listings
	StyleName = pterm.NewStyle(pterm.FgGreen)

	// StyleVersion - package versions
	StyleVersion = pterm.NewStyle(pterm.FgBlue)

	// StyleSource - catalog tags ([official] / [aur])
	StyleSource = pterm.NewStyle(pterm.FgCyan)

	// StyleRank - result numbering
	StyleRank = pterm.NewStyle(pterm.FgYellow)

	// StyleSuccess - completed operations
	StyleSuccess = pterm.NewStyle(pterm.FgGreen, pterm.Bold)

	// StyleWarning - degraded but non-fatal conditions
	StyleWarning = pterm.NewStyle(pterm.FgYellow)

	// StyleError - failures
	StyleError = pterm.NewStyle(pterm.FgRed, pterm.Bold)

	// StyleMuted - secondary text (descriptions, hints)
	StyleMuted = pterm.NewStyle(pterm.FgGray)
)
