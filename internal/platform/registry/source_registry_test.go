package registry

import (
	"context"
	"fmt"
	"testing"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/platform/logx"
	"archlink/internal/testutil"
)

type stubSource struct {
	name   string
	origin domain.Source
}

func (s *stubSource) Name() string          { return s.name }
func (s *stubSource) Origin() domain.Source { return s.origin }
func (s *stubSource) Search(ctx context.Context, query string) ([]domain.Package, error) {
	return nil, nil
}
func (s *stubSource) Close() error { return nil }

func stubFactory(name string, origin domain.Source) SourceFactory {
	return func(cfg ports.SourceConfig, logger logx.Logger) (ports.Source, error) {
		return &stubSource{name: name, origin: origin}, nil
	}
}

func newTestRegistry() *SourceRegistry {
	return NewSourceRegistry(logx.NewSilent())
}

func TestRegister(t *testing.T) {
	t.Run("registers a source", func(t *testing.T) {
		r := newTestRegistry()
		err := r.Register("archweb", stubFactory("archweb", domain.SourceOfficial), SourceMetadata{Name: "archweb"})
		testutil.AssertNoError(t, err, "registration should succeed")
		testutil.AssertTrue(t, r.IsRegistered("archweb"), "source should be registered")
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		r := newTestRegistry()
		_ = r.Register("aur", stubFactory("aur", domain.SourceAUR), SourceMetadata{Name: "aur"})
		err := r.Register("aur", stubFactory("aur", domain.SourceAUR), SourceMetadata{Name: "aur"})
		testutil.AssertError(t, err, "duplicate registration should fail")
	})

	t.Run("rejects empty name and nil factory", func(t *testing.T) {
		r := newTestRegistry()
		testutil.AssertError(t, r.Register("", stubFactory("x", domain.SourceAUR), SourceMetadata{}), "empty name")
		testutil.AssertError(t, r.Register("x", nil, SourceMetadata{}), "nil factory")
	})
}

func TestBuild(t *testing.T) {
	t.Run("builds enabled sources in priority order", func(t *testing.T) {
		r := newTestRegistry()
		_ = r.Register("archweb", stubFactory("archweb", domain.SourceOfficial), SourceMetadata{Name: "archweb"})
		_ = r.Register("aur", stubFactory("aur", domain.SourceAUR), SourceMetadata{Name: "aur"})

		configs := map[string]ports.SourceConfig{
			"archweb": {Enabled: true, Priority: 10},
			"aur":     {Enabled: true, Priority: 5},
		}

		sources, err := r.Build(configs, logx.NewSilent())
		testutil.AssertNoError(t, err, "build should succeed")
		testutil.AssertEqual(t, len(sources), 2, "both sources built")
		testutil.AssertEqual(t, sources[0].Name(), "archweb", "higher priority first")
		testutil.AssertEqual(t, sources[1].Name(), "aur", "lower priority second")
	})

	t.Run("skips disabled sources", func(t *testing.T) {
		r := newTestRegistry()
		_ = r.Register("archweb", stubFactory("archweb", domain.SourceOfficial), SourceMetadata{Name: "archweb"})
		_ = r.Register("aur", stubFactory("aur", domain.SourceAUR), SourceMetadata{Name: "aur"})

		configs := map[string]ports.SourceConfig{
			"archweb": {Enabled: false},
			"aur":     {Enabled: true},
		}

		sources, err := r.Build(configs, logx.NewSilent())
		testutil.AssertNoError(t, err, "build should succeed")
		testutil.AssertEqual(t, len(sources), 1, "only enabled source built")
		testutil.AssertEqual(t, sources[0].Name(), "aur", "aur should survive")
	})

	t.Run("tolerates a failing factory", func(t *testing.T) {
		r := newTestRegistry()
		_ = r.Register("broken", func(cfg ports.SourceConfig, logger logx.Logger) (ports.Source, error) {
			return nil, fmt.Errorf("boom")
		}, SourceMetadata{Name: "broken"})
		_ = r.Register("aur", stubFactory("aur", domain.SourceAUR), SourceMetadata{Name: "aur"})

		configs := map[string]ports.SourceConfig{
			"broken": {Enabled: true},
			"aur":    {Enabled: true},
		}

		sources, err := r.Build(configs, logx.NewSilent())
		testutil.AssertNoError(t, err, "one working source is enough")
		testutil.AssertEqual(t, len(sources), 1, "only the working source built")
	})

	t.Run("fails when nothing can be built", func(t *testing.T) {
		r := newTestRegistry()
		configs := map[string]ports.SourceConfig{
			"ghost": {Enabled: true},
		}

		_, err := r.Build(configs, logx.NewSilent())
		testutil.AssertError(t, err, "no buildable sources should fail")
	})
}

func TestList(t *testing.T) {
	r := newTestRegistry()
	_ = r.Register("aur", stubFactory("aur", domain.SourceAUR), SourceMetadata{Name: "aur"})
	_ = r.Register("archweb", stubFactory("archweb", domain.SourceOfficial), SourceMetadata{Name: "archweb"})

	names := r.List()
	testutil.AssertLen(t, names, 2, "two registered sources")
	testutil.AssertEqual(t, names[0], "archweb", "sorted output")
}
