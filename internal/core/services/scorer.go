package services

import (
	"sort"
	"strings"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// Per-field match points. All rules fire simultaneously per term;
// a term hitting the title still also earns the searchable-text
// point.
const (
	pointsTitle       = 10
	pointsTrefwoorden = 8
	pointsDescription = 5
	pointsCategory    = 3
	pointsAnywhere    = 1
)

// pointsExactIdentifier rewards a query that names a reference's own
// identifier (feitcode, ECLI). It dwarfs the field points so a code
// lookup outranks keyword-matched neighbours in a mixed query.
const pointsExactIdentifier = 100

// DefaultResultLimit caps ranked output when the caller passes none.
const DefaultResultLimit = 10

// minTermLength discards noise terms, except known short legal
// abbreviations.
const minTermLength = 3

// shortLegalTerms are abbreviations below the minimum term length
// that still carry meaning in Dutch legal queries.
var shortLegalTerms = map[string]bool{
	"bw":  true,
	"sr":  true,
	"sv":  true,
	"rv":  true,
	"eu":  true,
	"apv": true,
	"cao": true,
	"awb": true,
	"wm":  true,
	"gw":  true,
}

// Scorer assigns additive bag-of-words relevance scores to candidate
// references and ranks them.
type Scorer struct{}

// NewScorer creates a scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score ranks candidates against the query, descending by score with
// insertion order preserved on ties. Candidates scoring 0 are
// excluded. limit <= 0 applies DefaultResultLimit.
func (s *Scorer) Score(query domain.SearchQuery, candidates []domain.Reference, limit int) []domain.ScoredCandidate {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	terms := searchTerms(query.Lower())
	scored := make([]domain.ScoredCandidate, 0, len(candidates))

	for _, ref := range candidates {
		score := scoreReference(ref, terms)
		if score == 0 {
			continue
		}
		scored = append(scored, domain.ScoredCandidate{Reference: ref, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// searchTerms splits a lower-cased query on whitespace and drops
// terms shorter than three runes unless they are known legal
// abbreviations.
func searchTerms(lower string) []string {
	fields := strings.Fields(lower)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < minTermLength && !shortLegalTerms[f] {
			continue
		}
		terms = append(terms, f)
	}
	return terms
}

// scoreReference applies every scoring rule for every term. The
// rules are cumulative, not first-match-wins.
func scoreReference(ref domain.Reference, terms []string) int {
	identifier := strings.ToLower(ref.Identifier)
	title := strings.ToLower(ref.Title)
	description := strings.ToLower(ref.Description)
	category := strings.ToLower(ref.Category)
	searchable := ref.SearchableText()

	trefwoorden := make([]string, len(ref.Trefwoorden))
	for i, w := range ref.Trefwoorden {
		trefwoorden[i] = strings.ToLower(w)
	}

	score := 0
	for _, term := range terms {
		if term == identifier {
			score += pointsExactIdentifier
		}
		if strings.Contains(title, term) {
			score += pointsTitle
		}
		for _, w := range trefwoorden {
			if strings.Contains(w, term) {
				score += pointsTrefwoorden
				break
			}
		}
		if strings.Contains(description, term) {
			score += pointsDescription
		}
		if strings.Contains(category, term) {
			score += pointsCategory
		}
		if strings.Contains(searchable, term) {
			score += pointsAnywhere
		}
	}
	return score
}
