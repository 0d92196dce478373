// internal/core/ports/source.go
package ports

import (
	"context"
	"time"

	"archlink/internal/core/domain"
)

// Source is the primary port for package catalogs. Any catalog (API, CLI,
// builtin) must implement this interface.
type Source interface {
	// Name returns the unique name of the source (e.g. "archweb", "aur").
	Name() string

	// Origin returns the catalog tag stamped on every package this source
	// emits. Immutable for the lifetime of the source.
	Origin() domain.Source

	// Search queries the catalog and returns matching packages. A transport
	// or parse failure is returned as an error; the caller decides whether
	// it is fatal (the aggregator treats it as an empty result).
	Search(ctx context.Context, query string) ([]domain.Package, error)

	// Close releases resources held by the source.
	Close() error
}

// SourceConfig holds per-source configuration.
type SourceConfig struct {
	// Enabled indicates whether the source participates in searches.
	Enabled bool

	// Timeout bounds one catalog query. Sources are responsible for giving
	// up on their own; the aggregator never cancels them.
	Timeout time.Duration

	// Priority orders source construction (higher builds first).
	Priority int
}

// DefaultSourceConfig returns the default per-source configuration.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		Enabled:  true,
		Timeout:  10 * time.Second,
		Priority: 0,
	}
}
