// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `archlink - Arch Linux package search and install helper

USAGE:
  archlink search <query...>     Search the official repos and the AUR
  archlink install <package>     Install a package by exact name
  archlink <query...>            Shorthand for search

OPTIONS:
  -n, --max-results int    Maximum number of search results (default: 10)
  -q, --quiet              Only print warnings and errors to stderr
  --src.archweb            Enable the official repository source (default: true)
  --src.aur                Enable the AUR source (default: true)
  -v, --version            Print version information and exit
  -h, --help               Show this help message

EXAMPLES:
  Search both catalogs:
    archlink search firefox

  Multi-word search (every word boosts matching descriptions):
    archlink search music player

  Search the AUR only:
    archlink search yay --src.archweb=false

  Install without searching first:
    archlink install firefox

CONFIGURATION:
  Settings load in order: defaults, config file, environment, flags.

  Config file (/etc/archlink/config.yaml, override with ARCHLINK_CONFIG):
    max_results: 20
    sources:
      aur:
        enabled: false
        timeout: 30

  Environment variables:
    ARCHLINK_MAX_RESULTS=20            Result cap
    ARCHLINK_QUIET=true                Quiet mode
    ARCHLINK_LOG_LEVEL=debug           Log verbosity
    ARCHLINK_CONFIG=/path/config.yaml  Config file location
    ARCHLINK_SOURCES_AUR_ENABLED=false Per-source toggles

INSTALLATION:
  Official packages install through "sudo pacman -S". When pacman cannot
  provide the package, archlink falls through to yay and then paru if they
  are installed. AUR packages skip pacman and go straight to the helpers.
`

// PrintHelp writes the help message to stdout.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
}

// PrintVersion writes version information to stdout.
func PrintVersion(version, commit, date string) {
	fmt.Printf("archlink %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", runtime.Version())
}
