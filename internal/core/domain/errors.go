// internal/core/domain/errors.go
package domain

import "errors"

var (
	// ErrEmptyPackageName indicates a package record with a blank name.
	ErrEmptyPackageName = errors.New("package name cannot be empty")

	// ErrUnknownSource indicates a source tag outside the known set.
	ErrUnknownSource = errors.New("unknown package source")

	// ErrNoSourcesAvailable indicates that no search sources could be built.
	ErrNoSourcesAvailable = errors.New("no sources available")
)
