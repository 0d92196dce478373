package domain

import (
	"testing"

	"archlink/internal/testutil"
)

func TestNewPackage(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		pkg := NewPackage("  firefox  ", "142.0-1", "web browser", SourceOfficial)
		testutil.AssertEqual(t, pkg.Name, "firefox", "name should be trimmed")
	})

	t.Run("defaults an empty description", func(t *testing.T) {
		pkg := NewPackage("yay", "12.5.0-1", "", SourceAUR)
		testutil.AssertEqual(t, pkg.Description, DefaultDescription, "description should default")
	})

	t.Run("defaults a whitespace-only description", func(t *testing.T) {
		pkg := NewPackage("yay", "12.5.0-1", "   ", SourceAUR)
		testutil.AssertEqual(t, pkg.Description, DefaultDescription, "description should default")
	})

	t.Run("keeps a provided description", func(t *testing.T) {
		pkg := NewPackage("firefox", "142.0-1", "web browser", SourceOfficial)
		testutil.AssertEqual(t, pkg.Description, "web browser", "description should be kept")
	})
}

func TestPackage_Validate(t *testing.T) {
	t.Run("accepts a complete package", func(t *testing.T) {
		pkg := NewPackage("firefox", "142.0-1", "web browser", SourceOfficial)
		testutil.AssertNoError(t, pkg.Validate(), "valid package should pass")
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		pkg := Package{Name: "   ", Source: SourceOfficial}
		testutil.AssertError(t, pkg.Validate(), "blank name should fail")
	})

	t.Run("rejects an invalid source", func(t *testing.T) {
		pkg := Package{Name: "firefox", Source: Source("community")}
		testutil.AssertError(t, pkg.Validate(), "unknown source should fail")
	})
}

func TestSource_IsValid(t *testing.T) {
	for _, s := range []Source{SourceOfficial, SourceAUR, SourceUnknown} {
		testutil.AssertTrue(t, s.IsValid(), "known source should be valid")
	}
	testutil.AssertFalse(t, Source("").IsValid(), "empty source should be invalid")
	testutil.AssertFalse(t, Source("testing").IsValid(), "arbitrary source should be invalid")
}
