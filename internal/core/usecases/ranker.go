// internal/core/usecases/ranker.go
package usecases

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"archlink/internal/core/domain"
)

// scoreBase is the starting score a candidate name earns before edit
// distance is subtracted. Large enough that any realistic distance keeps
// scores positive and comparable.
const scoreBase = 1000

// descWordBonus is added once per query word found in the description.
const descWordBonus = 50

// Score computes the relevance of one candidate against the full query:
// scoreBase minus the case-sensitive edit distance between name and query,
// plus descWordBonus for each whitespace-delimited query word that appears
// case-insensitively in the description. A word contributes at most once no
// matter how often it occurs. Near-exact name matches dominate; description
// hits are a secondary boost.
func Score(pkg domain.Package, query string) int {
	score := scoreBase - fuzzy.LevenshteinDistance(pkg.Name, query)

	desc := strings.ToLower(pkg.Description)
	for _, word := range strings.Fields(query) {
		if strings.Contains(desc, strings.ToLower(word)) {
			score += descWordBonus
		}
	}
	return score
}

// Rank orders candidates by descending score and truncates to limit. It is a
// pure function: the input slice is never mutated and identical inputs yield
// identical output. Ties keep input order (sort.SliceStable), so re-ranking
// an already-ranked list is a no-op; the tie-break carries no semantic
// meaning. Truncation happens strictly after sorting so a late high-scoring
// candidate can never be displaced by an early low-scoring one.
func Rank(candidates []domain.Package, query string, limit int) []domain.Package {
	if limit <= 0 || len(candidates) == 0 {
		return []domain.Package{}
	}

	type scored struct {
		pkg   domain.Package
		score int
	}

	ranked := make([]scored, len(candidates))
	for i, pkg := range candidates {
		ranked[i] = scored{pkg: pkg, score: Score(pkg, query)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	out := make([]domain.Package, limit)
	for i := 0; i < limit; i++ {
		out[i] = ranked[i].pkg
	}
	return out
}
