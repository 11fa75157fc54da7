package domain

import "strings"

// Origin identifies which subsystem produced a Reference.
// It determines trust weighting during deduplication.
type Origin string

const (
	// OriginKeywordTable marks references resolved via the curated
	// keyword tables.
	OriginKeywordTable Origin = "keyword_table"

	// OriginExternalSearch marks references obtained from an external
	// web-search or case-law API call.
	OriginExternalSearch Origin = "external_search"

	// OriginStructuredDB marks references from the curated structured
	// catalog (fine codes, statute topics, article knowledge).
	OriginStructuredDB Origin = "structured_db"
)

// TrustRank returns the precedence of an origin during deduplication.
// Higher values win when two references share an identifier.
func (o Origin) TrustRank() int {
	switch o {
	case OriginStructuredDB:
		return 3
	case OriginKeywordTable:
		return 2
	case OriginExternalSearch:
		return 1
	default:
		return 0
	}
}

// Reference is a candidate legal source to present to the user:
// a statute article, a court ruling, or a traffic-fine code.
type Reference struct {
	// Identifier is the natural unique key: a fine code ("N420"),
	// an ECLI ("ECLI:NL:HR:2015:2246"), or a generated surrogate key
	// for web hits lacking a natural key.
	Identifier string `json:"identifier"`

	// Title is the human-readable name.
	Title string `json:"title"`

	// Description is a short explanatory text. May be empty.
	Description string `json:"description,omitempty"`

	// LegalBasis is an optional statute or article citation.
	LegalBasis string `json:"legalBasis,omitempty"`

	// MonetaryValue holds the fine amount for fine records. It is a
	// string because some rows carry a non-numeric sentinel such as
	// "OM/rechter" (referred to the criminal court).
	MonetaryValue string `json:"monetaryValue,omitempty"`

	// Category is a free-text classification, e.g. "overtreding".
	Category string `json:"category,omitempty"`

	// SourceURL is an optional canonical link.
	SourceURL string `json:"sourceUrl,omitempty"`

	// Origin records which subsystem produced this reference.
	Origin Origin `json:"origin"`

	// Trefwoorden is the curated keyword list used by the scorer.
	// Only populated for catalog-backed references.
	Trefwoorden []string `json:"trefwoorden,omitempty"`
}

// SearchableText concatenates all textual fields for fallback matching.
func (r Reference) SearchableText() string {
	parts := []string{r.Identifier, r.Title, r.Description, r.LegalBasis, r.Category}
	parts = append(parts, r.Trefwoorden...)
	return strings.ToLower(strings.Join(parts, " "))
}

// ScoredCandidate pairs a Reference with its relevance score.
// Higher is more relevant; ties keep insertion order.
type ScoredCandidate struct {
	Reference Reference `json:"reference"`
	Score     int       `json:"score"`
}

// MergeReferences deduplicates references by identifier, preserving
// input order. When two references share an identifier the one with
// the higher origin trust rank wins; within equal trust the first
// seen wins. The curated catalog therefore always beats a web hit.
func MergeReferences(lists ...[]Reference) []Reference {
	index := make(map[string]int)
	merged := make([]Reference, 0)

	for _, list := range lists {
		for _, ref := range list {
			if ref.Identifier == "" {
				continue
			}
			pos, ok := index[ref.Identifier]
			if !ok {
				index[ref.Identifier] = len(merged)
				merged = append(merged, ref)
				continue
			}
			if ref.Origin.TrustRank() > merged[pos].Origin.TrustRank() {
				merged[pos] = ref
			}
		}
	}

	return merged
}
