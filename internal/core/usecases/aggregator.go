// internal/core/usecases/aggregator.go
package usecases

import (
	"context"
	"sync"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/platform/logx"
)

// SourceWarning reports one source's non-fatal failure during aggregation.
type SourceWarning struct {
	Source string
	Err    error
}

// Aggregator runs every catalog source concurrently and merges their results.
// A failing source degrades to an empty result; aggregation itself never
// fails, even when every source does.
type Aggregator struct {
	sources []ports.Source
	logger  logx.Logger
}

// NewAggregator creates an aggregator over the given sources.
func NewAggregator(sources []ports.Source, logger logx.Logger) *Aggregator {
	if logger == nil {
		logger = logx.New()
	}
	return &Aggregator{
		sources: sources,
		logger:  logger.With("component", "aggregator"),
	}
}

// Aggregate queries all sources concurrently and returns the merged candidate
// list plus one warning per failed source. All sources are joined before
// merging; each goroutine writes a privately-owned slot, so no locking is
// needed beyond the join itself. Output order is unspecified; ordering
// belongs to the ranker.
func (a *Aggregator) Aggregate(ctx context.Context, query string) ([]domain.Package, []SourceWarning) {
	type slot struct {
		packages []domain.Package
		err      error
	}

	slots := make([]slot, len(a.sources))

	var wg sync.WaitGroup
	for i, src := range a.sources {
		wg.Add(1)
		go func(i int, src ports.Source) {
			defer wg.Done()
			pkgs, err := src.Search(ctx, query)
			slots[i] = slot{packages: pkgs, err: err}
		}(i, src)
	}
	wg.Wait()

	merged := make([]domain.Package, 0)
	warnings := make([]SourceWarning, 0)

	for i, src := range a.sources {
		if slots[i].err != nil {
			a.logger.Warn("source search failed",
				"source", src.Name(),
				"error", slots[i].err.Error(),
			)
			warnings = append(warnings, SourceWarning{Source: src.Name(), Err: slots[i].err})
			continue
		}
		merged = append(merged, dedupeByName(slots[i].packages)...)
	}

	a.logger.Debug("aggregation complete",
		"query", query,
		"candidates", len(merged),
		"warnings", len(warnings),
	)

	return merged, warnings
}

// dedupeByName collapses repeated emissions of the same name within a single
// source to the first occurrence, and drops records that fail validation.
// Duplicates across sources are intentionally kept: a package may
// legitimately exist once per catalog.
func dedupeByName(packages []domain.Package) []domain.Package {
	if len(packages) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(packages))
	out := make([]domain.Package, 0, len(packages))
	for _, pkg := range packages {
		if pkg.Validate() != nil {
			continue
		}
		if seen[pkg.Name] {
			continue
		}
		seen[pkg.Name] = true
		out = append(out, pkg)
	}
	return out
}
