// internal/sources/aur/aur.go
package aur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"archlink/internal/core/domain"
	"archlink/internal/core/ports"
	"archlink/internal/platform/errors"
	"archlink/internal/platform/httpclient"
	"archlink/internal/platform/logx"
	"archlink/internal/platform/registry"
)

const rpcEndpoint = "https://aur.archlinux.org/rpc/"

// Source package auto-registration on import.
func init() {
	if err := registry.Global().Register(
		"aur",
		func(cfg ports.SourceConfig, logger logx.Logger) (ports.Source, error) {
			return New(cfg, logger), nil
		},
		registry.SourceMetadata{
			Name:        "aur",
			Description: "Arch User Repository search via the AUR RPC interface",
			Origin:      domain.SourceAUR,
			Priority:    5,
		},
	); err != nil {
		logx.New().Warn("failed to register aur source", "error", err.Error())
	}
}

// AUR queries the community catalog through its JSON-RPC-style search
// endpoint.
type AUR struct {
	client   *httpclient.Client
	logger   logx.Logger
	endpoint string
}

// New creates the AUR source. One catalog query, bounded by the configured
// timeout, no retries within a search.
func New(cfg ports.SourceConfig, logger logx.Logger) *AUR {
	httpCfg := httpclient.DefaultConfig()
	if cfg.Timeout > 0 {
		httpCfg.Timeout = cfg.Timeout
	}

	return &AUR{
		client:   httpclient.New(httpCfg, logger),
		logger:   logger.With("source", "aur"),
		endpoint: rpcEndpoint,
	}
}

// Name returns the unique source name.
func (a *AUR) Name() string {
	return "aur"
}

// Origin returns the catalog tag for every package this source emits.
func (a *AUR) Origin() domain.Source {
	return domain.SourceAUR
}

// Search issues one RPC search call and parses the result list.
func (a *AUR) Search(ctx context.Context, query string) ([]domain.Package, error) {
	endpoint := fmt.Sprintf("%s?v=5&type=search&arg=%s", a.endpoint, url.QueryEscape(query))

	body, err := a.client.FetchJSON(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "aur search failed")
	}

	packages, err := parseRPCResponse(body)
	if err != nil {
		return nil, errors.Wrap(err, "aur response")
	}

	a.logger.Debug("aur search completed", "query", query, "results", len(packages))
	return packages, nil
}

// Close implements ports.Source.
func (a *AUR) Close() error {
	return nil
}

// rpcRecord mirrors one package entry of the AUR RPC reply. The RPC uses
// capitalized field names.
type rpcRecord struct {
	Name        string  `json:"Name"`
	Version     string  `json:"Version"`
	Description *string `json:"Description"`
}

// rpcResponse mirrors the AUR RPC envelope. A failed query comes back with
// HTTP 200 and type "error".
type rpcResponse struct {
	Type    string      `json:"type"`
	Error   string      `json:"error"`
	Results []rpcRecord `json:"results"`
}

// parseRPCResponse converts the RPC reply into package records. Missing
// descriptions (JSON null) fall back to the shared placeholder.
func parseRPCResponse(body []byte) ([]domain.Package, error) {
	var resp rpcResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidResponse, err.Error())
	}

	if resp.Type == "error" {
		return nil, errors.Wrapf(errors.ErrInvalidResponse, "rpc error: %s", resp.Error)
	}

	packages := make([]domain.Package, 0, len(resp.Results))
	for _, rec := range resp.Results {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		description := ""
		if rec.Description != nil {
			description = *rec.Description
		}
		packages = append(packages, domain.NewPackage(rec.Name, rec.Version, description, domain.SourceAUR))
	}
	return packages, nil
}
