// internal/core/domain/package.go
package domain

import "strings"

// DefaultDescription is used when a catalog omits the description field.
const DefaultDescription = "No description available"

// Source identifies the catalog a package record originated from.
type Source string

const (
	// SourceOfficial marks packages discovered in the official repositories.
	SourceOfficial Source = "official"

	// SourceAUR marks packages discovered in the Arch User Repository.
	SourceAUR Source = "aur"

	// SourceUnknown is used for direct install requests with no prior
	// search context. The installer treats it like an official package
	// and still falls through to the AUR helpers.
	SourceUnknown Source = "unknown"
)

// IsValid reports whether the source is one of the known catalog tags.
func (s Source) IsValid() bool {
	switch s {
	case SourceOfficial, SourceAUR, SourceUnknown:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Source) String() string {
	return string(s)
}

// Package is one discovered package record. It is a value object: identity
// is (Name, Source) and instances are never mutated after a fetcher builds
// them. The same name may legitimately appear once per source.
type Package struct {
	Name        string
	Version     string
	Description string
	Source      Source
}

// NewPackage builds a normalized package record. An empty description is
// replaced with DefaultDescription so downstream rendering and scoring never
// deal with missing text.
func NewPackage(name, version, description string, source Source) Package {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(description) == "" {
		description = DefaultDescription
	}
	return Package{
		Name:        name,
		Version:     version,
		Description: description,
		Source:      source,
	}
}

// Validate checks the invariants a package must satisfy before entering the
// search pipeline.
func (p Package) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPackageName
	}
	if !p.Source.IsValid() {
		return ErrUnknownSource
	}
	return nil
}
