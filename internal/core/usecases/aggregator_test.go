package usecases

import (
	"context"
	"testing"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/platform/errors"
	"archlink/internal/platform/logx"
	"archlink/internal/testutil"
)

type fakeSource struct {
	name     string
	origin   domain.Source
	packages []domain.Package
	err      error
}

func (f *fakeSource) Name() string          { return f.name }
func (f *fakeSource) Origin() domain.Source { return f.origin }
func (f *fakeSource) Search(ctx context.Context, query string) ([]domain.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.packages, nil
}
func (f *fakeSource) Close() error { return nil }

func newAggregator(t *testing.T, sources ...*fakeSource) *Aggregator {
	t.Helper()
	srcs := make([]ports.Source, 0, len(sources))
	for _, s := range sources {
		srcs = append(srcs, s)
	}
	return NewAggregator(srcs, logx.NewSilent())
}

func TestAggregate(t *testing.T) {
	official := &fakeSource{
		name:   "archweb",
		origin: domain.SourceOfficial,
		packages: []domain.Package{
			domain.NewPackage("firefox", "142.0-1", "web browser", domain.SourceOfficial),
			domain.NewPackage("chromium", "129.0-1", "web browser", domain.SourceOfficial),
		},
	}
	aur := &fakeSource{
		name:   "aur",
		origin: domain.SourceAUR,
		packages: []domain.Package{
			domain.NewPackage("firefox-nightly", "143.0a1-1", "nightly browser", domain.SourceAUR),
		},
	}

	t.Run("merges both sources", func(t *testing.T) {
		agg := newAggregator(t, official, aur)
		packages, warnings := agg.Aggregate(context.Background(), "firefox")

		testutil.AssertEqual(t, len(packages), 3, "all candidates merged")
		testutil.AssertEqual(t, len(warnings), 0, "no warnings on success")
	})

	t.Run("one failing source yields the other's results", func(t *testing.T) {
		broken := &fakeSource{name: "archweb", origin: domain.SourceOfficial, err: errors.ErrConnectionFailed}

		agg := newAggregator(t, broken, aur)
		packages, warnings := agg.Aggregate(context.Background(), "firefox")

		testutil.AssertEqual(t, len(packages), 1, "surviving source's candidates kept")
		testutil.AssertEqual(t, packages[0].Name, "firefox-nightly", "aur result present")
		testutil.AssertEqual(t, len(warnings), 1, "one warning for the failed source")
		testutil.AssertEqual(t, warnings[0].Source, "archweb", "warning names the source")
	})

	t.Run("both sources failing is empty, not an error", func(t *testing.T) {
		brokenA := &fakeSource{name: "archweb", origin: domain.SourceOfficial, err: errors.ErrConnectionFailed}
		brokenB := &fakeSource{name: "aur", origin: domain.SourceAUR, err: errors.ErrInvalidResponse}

		agg := newAggregator(t, brokenA, brokenB)
		packages, warnings := agg.Aggregate(context.Background(), "firefox")

		testutil.AssertEqual(t, len(packages), 0, "no candidates")
		testutil.AssertEqual(t, len(warnings), 2, "one warning per failed source")
	})

	t.Run("collapses duplicates within one source", func(t *testing.T) {
		noisy := &fakeSource{
			name:   "archweb",
			origin: domain.SourceOfficial,
			packages: []domain.Package{
				domain.NewPackage("vim", "9.1-1", "editor", domain.SourceOfficial),
				domain.NewPackage("vim", "9.1-1", "editor", domain.SourceOfficial),
			},
		}

		agg := newAggregator(t, noisy)
		packages, _ := agg.Aggregate(context.Background(), "vim")
		testutil.AssertEqual(t, len(packages), 1, "repeated names collapse within a source")
	})

	t.Run("keeps duplicates across sources", func(t *testing.T) {
		a := &fakeSource{
			name:     "archweb",
			origin:   domain.SourceOfficial,
			packages: []domain.Package{domain.NewPackage("vim", "9.1-1", "editor", domain.SourceOfficial)},
		}
		b := &fakeSource{
			name:     "aur",
			origin:   domain.SourceAUR,
			packages: []domain.Package{domain.NewPackage("vim", "9.1-2", "editor", domain.SourceAUR)},
		}

		agg := newAggregator(t, a, b)
		packages, _ := agg.Aggregate(context.Background(), "vim")
		testutil.AssertEqual(t, len(packages), 2, "a package may appear once per source")
	})

	t.Run("drops invalid records", func(t *testing.T) {
		sloppy := &fakeSource{
			name:   "aur",
			origin: domain.SourceAUR,
			packages: []domain.Package{
				{Name: "   ", Source: domain.SourceAUR},
				domain.NewPackage("yay", "12.5.0-1", "pacman wrapper", domain.SourceAUR),
			},
		}

		agg := newAggregator(t, sloppy)
		packages, _ := agg.Aggregate(context.Background(), "yay")
		testutil.AssertEqual(t, len(packages), 1, "blank names never enter the pipeline")
	})

	t.Run("no sources yields empty output", func(t *testing.T) {
		agg := newAggregator(t)
		packages, warnings := agg.Aggregate(context.Background(), "anything")
		testutil.AssertEqual(t, len(packages), 0, "nothing to merge")
		testutil.AssertEqual(t, len(warnings), 0, "nothing to warn about")
	})
}
