package driving

import (
	"context"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// SearchOptions configures a reference search.
type SearchOptions struct {
	// Limit is the maximum number of ranked references (default 10).
	Limit int

	// SkipExternal disables the external web-search leg, leaving
	// catalog-only results with the matching confidence downgrade.
	SkipExternal bool
}

// SearchResult is the outcome of one pipeline run.
type SearchResult struct {
	// Results are the ranked candidates, best first.
	Results []domain.ScoredCandidate `json:"results"`

	// Assessment labels how much trust the source set deserves.
	Assessment domain.ReliabilityAssessment `json:"assessment"`

	// SourceCounts counts contributing references per origin.
	SourceCounts map[domain.Origin]int `json:"sources"`
}

// SearchService runs the reference search-and-rank pipeline.
type SearchService interface {
	// Search matches the query against the curated catalog and the
	// external search providers, merges, dedups and ranks.
	Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) (SearchResult, error)
}
