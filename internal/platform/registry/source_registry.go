// internal/platform/registry/source_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/platform/logx"
)

// SourceRegistry manages registration and construction of catalog sources.
// Registry + factory keeps source creation decoupled from application code:
// each source package registers itself from init().
type SourceRegistry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
	metadata  map[string]SourceMetadata
	logger    logx.Logger
}

// SourceFactory creates a Source instance from its configuration.
type SourceFactory func(cfg ports.SourceConfig, logger logx.Logger) (ports.Source, error)

// SourceMetadata describes a registered source.
type SourceMetadata struct {
	Name        string
	Description string
	Origin      domain.Source
	Priority    int
}

var globalRegistry *SourceRegistry
var once sync.Once

// Global returns the global registry instance.
func Global() *SourceRegistry {
	once.Do(func() {
		globalRegistry = NewSourceRegistry(logx.New())
	})
	return globalRegistry
}

// NewSourceRegistry creates a new source registry.
func NewSourceRegistry(logger logx.Logger) *SourceRegistry {
	return &SourceRegistry{
		factories: make(map[string]SourceFactory),
		metadata:  make(map[string]SourceMetadata),
		logger:    logger.With("component", "source-registry"),
	}
}

// Register adds a source factory with its metadata.
// Typically called from init() of each source package.
func (r *SourceRegistry) Register(name string, factory SourceFactory, meta SourceMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil for source %s", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("source %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("source registered", "name", name, "origin", meta.Origin)

	return nil
}

// Build constructs every enabled source from the given configuration,
// ordered by priority (highest first). A factory failure is a warning, not a
// fatal error; only ending up with zero sources fails.
func (r *SourceRegistry) Build(configs map[string]ports.SourceConfig, logger logx.Logger) ([]ports.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if configs == nil {
		return nil, fmt.Errorf("configs cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	type prioritizedSource struct {
		name     string
		config   ports.SourceConfig
		priority int
	}

	prioritized := make([]prioritizedSource, 0, len(configs))
	for name, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		if _, exists := r.factories[name]; !exists {
			r.logger.Warn("source not registered, skipping", "source", name)
			continue
		}
		prioritized = append(prioritized, prioritizedSource{
			name:     name,
			config:   cfg,
			priority: cfg.Priority,
		})
	}

	sort.Slice(prioritized, func(i, j int) bool {
		if prioritized[i].priority != prioritized[j].priority {
			return prioritized[i].priority > prioritized[j].priority
		}
		return prioritized[i].name < prioritized[j].name
	})

	sources := make([]ports.Source, 0, len(prioritized))
	for _, ps := range prioritized {
		source, err := r.factories[ps.name](ps.config, logger)
		if err != nil {
			r.logger.Warn("failed to build source", "source", ps.name, "error", err.Error())
			continue
		}
		sources = append(sources, source)
		r.logger.Debug("source built", "name", ps.name, "priority", ps.priority)
	}

	if len(sources) == 0 && len(configs) > 0 {
		return nil, domain.ErrNoSourcesAvailable
	}

	logger.Debug("sources built", "count", len(sources), "requested", len(configs))
	return sources, nil
}

// List returns the names of all registered sources, sorted.
func (r *SourceRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata returns the metadata of a registered source.
func (r *SourceRegistry) GetMetadata(name string) (SourceMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered reports whether a source is registered.
func (r *SourceRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear removes every registered source (useful for testing).
func (r *SourceRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]SourceFactory)
	r.metadata = make(map[string]SourceMetadata)
}
