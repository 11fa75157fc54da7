package driven

import (
	"context"

	"github.com/wethelder/wethelder/internal/core/domain"
)

// CaseLawFilters narrows a case-law query.
type CaseLawFilters struct {
	// Year filters rulings by year, 0 means any.
	Year int

	// Court filters by court name, empty means any.
	Court string

	// CaseType filters by area of law, empty means any.
	CaseType string
}

// CaseLawService queries the case-law API (rechtspraak.nl style).
// Optional; failures degrade to web-search-only case law.
type CaseLawService interface {
	// Search returns rulings as references with their ECLI as the
	// natural identifier and origin OriginExternalSearch.
	Search(ctx context.Context, query string, filters CaseLawFilters, limit int) ([]domain.Reference, error)
}
