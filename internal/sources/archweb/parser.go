// internal/sources/archweb/parser.go
package archweb

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"archlink/internal/core/domain"
	"archlink/internal/platform/errors"
)

// packageRecord mirrors one entry of the archlinux.org search response.
type packageRecord struct {
	Name        string `json:"pkgname"`
	Version     string `json:"pkgver"`
	Release     string `json:"pkgrel"`
	Description string `json:"pkgdesc"`
}

// searchResponse mirrors the archlinux.org search JSON document.
type searchResponse struct {
	Results []packageRecord `json:"results"`
}

// parseSearchJSON converts the catalog's JSON reply into package records.
// Records without a name are skipped; a missing description falls back to
// the shared placeholder.
func parseSearchJSON(body []byte) ([]domain.Package, error) {
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidResponse, err.Error())
	}

	packages := make([]domain.Package, 0, len(resp.Results))
	for _, rec := range resp.Results {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		version := rec.Version
		if rec.Release != "" {
			version = fmt.Sprintf("%s-%s", rec.Version, rec.Release)
		}
		packages = append(packages, domain.NewPackage(rec.Name, version, rec.Description, domain.SourceOfficial))
	}
	return packages, nil
}

// parsePacmanOutput parses the line-oriented output of the local package
// database query. A non-indented line starts a record ("name version" with
// an optional description prefix); indented lines continue the running
// record's description. A leading "repo/" prefix on the name is stripped.
func parsePacmanOutput(out []byte) []domain.Package {
	packages := make([]domain.Package, 0)

	var name, version string
	var desc []string

	flush := func() {
		if name == "" {
			return
		}
		packages = append(packages, domain.NewPackage(name, version, strings.Join(desc, " "), domain.SourceOfficial))
		name, version, desc = "", "", nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		indented := strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
		if indented {
			if name != "" {
				desc = append(desc, strings.TrimSpace(line))
			}
			continue
		}

		flush()

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		name = fields[0]
		if idx := strings.IndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}
		version = fields[1]
		if len(fields) > 2 {
			desc = append(desc, strings.Join(fields[2:], " "))
		}
	}
	flush()

	return packages
}
