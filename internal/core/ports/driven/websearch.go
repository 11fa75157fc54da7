package driven

import (
	"context"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// WebSearchOptions restricts and biases an external search call.
type WebSearchOptions struct {
	// AllowedDomains limits results via site: restrictions. Only
	// hits from these domains are requested.
	AllowedDomains []string

	// BoostTerms are appended to the query to bias ranking, e.g. a
	// detected municipality name for local-ordinance questions.
	BoostTerms []string

	// Limit caps the number of hits.
	Limit int
}

// WebSearchService issues one call to an external search provider
// restricted to trusted domains. This is an optional service: when
// nil or unconfigured the pipeline runs catalog-only with lowered
// confidence.
type WebSearchService interface {
	// Search returns normalised references with origin
	// OriginExternalSearch. A transport or non-2xx failure returns
	// an error together with an empty list; callers treat that as
	// "no external results", never as fatal.
	Search(ctx context.Context, query string, opts WebSearchOptions) ([]domain.Reference, error)

	// IsConfigured reports whether credentials are present.
	IsConfigured() bool
}
