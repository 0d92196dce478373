// internal/sources/archweb/archweb.go
package archweb

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/platform/errors"
	"archlink/internal/platform/httpclient"
	"archlink/internal/platform/logx"
	"archlink/internal/platform/registry"
)

const searchEndpoint = "https://archlinux.org/packages/search/json/"

// Source package auto-registration on import.
func init() {
	if err := registry.Global().Register(
		"archweb",
		func(cfg ports.SourceConfig, logger logx.Logger) (ports.Source, error) {
			return New(cfg, logger), nil
		},
		registry.SourceMetadata{
			Name:        "archweb",
			Description: "Official repository search via archlinux.org",
			Origin:      domain.SourceOfficial,
			Priority:    10,
		},
	); err != nil {
		logx.New().Warn("failed to register archweb source", "error", err.Error())
	}
}

// Archweb queries the official package catalog over HTTP. When the website
// is unreachable it falls back to the local package database via
// `pacman -Ss`, so an offline host with a synced database still gets
// official results.
type Archweb struct {
	client     *httpclient.Client
	logger     logx.Logger
	endpoint   string
	localQuery func(ctx context.Context, query string) ([]byte, error)
}

// New creates the official-repository source. One catalog query, bounded by
// the configured timeout, no retries within a search.
func New(cfg ports.SourceConfig, logger logx.Logger) *Archweb {
	httpCfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		httpCfg.Timeout = cfg.Timeout
	}

	return &Archweb{
		client:     httpclient.New(httpCfg, logger),
		logger:     logger.With("source", "archweb"),
		endpoint:   searchEndpoint,
		localQuery: runPacmanSearch,
	}
}

// Name returns the unique source name.
func (a *Archweb) Name() string {
	return "archweb"
}

// Origin returns the catalog tag for every package this source emits.
func (a *Archweb) Origin() domain.Source {
	return domain.SourceOfficial
}

// Search queries archlinux.org and parses the JSON result list. On HTTP
// failure it tries the local pacman database; only when both paths fail does
// the source report an error (carrying both causes).
func (a *Archweb) Search(ctx context.Context, query string) ([]domain.Package, error) {
	endpoint := fmt.Sprintf("%s?q=%s", a.endpoint, url.QueryEscape(query))

	body, httpErr := a.client.FetchJSON(ctx, endpoint)
	if httpErr == nil {
		packages, err := parseSearchJSON(body)
		if err != nil {
			return nil, errors.Wrap(err, "archweb response")
		}
		a.logger.Debug("archweb search completed", "query", query, "results", len(packages))
		return packages, nil
	}

	a.logger.Warn("archweb request failed, trying local database",
		"query", query,
		"error", httpErr.Error(),
	)

	out, localErr := a.localQuery(ctx, query)
	if localErr != nil {
		return nil, errors.Wrap(errors.Join(httpErr, localErr), "official repo search failed")
	}

	packages := parsePacmanOutput(out)
	a.logger.Debug("local database search completed", "query", query, "results", len(packages))
	return packages, nil
}

// Close implements ports.Source. The HTTP client holds no resources that
// need explicit release.
func (a *Archweb) Close() error {
	return nil
}

// runPacmanSearch invokes the host's package database query tool. Exit
// status 1 with empty output means "no matches", which is a valid empty
// result rather than a failure.
func runPacmanSearch(ctx context.Context, query string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, "pacman", "-Ss", query).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 && len(out) == 0 {
			return nil, nil
		}
		return nil, errors.Wrap(err, "pacman -Ss failed")
	}
	return out, nil
}
