// Package google provides a web-search adapter backed by the Google
// Custom Search JSON API.
package google

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driven.WebSearchService = (*SearchService)(nil)

// Custom Search caps one page at 10 results.
const maxResultsPerCall = 10

// queriesPerSecond proactively throttles outbound calls to stay
// inside the provider's QPS limit.
const queriesPerSecond = 5

// Config holds Google Custom Search configuration.
type Config struct {
	// APIKey is the Google API key. Empty means unconfigured.
	APIKey string

	// SearchEngineID is the Custom Search Engine identifier.
	SearchEngineID string
}

// SearchService issues domain-restricted searches against the Google
// Custom Search API and normalises hits into references.
type SearchService struct {
	cfg     Config
	svc     *customsearch.Service
	bucket  *rate.Limiter
	nowFunc func() time.Time
}

// NewSearchService creates the search adapter. With missing
// credentials it still constructs, reporting unconfigured, so the
// pipeline can degrade instead of failing at startup.
func NewSearchService(ctx context.Context, cfg Config) (*SearchService, error) {
	s := &SearchService{
		cfg:     cfg,
		bucket:  rate.NewLimiter(rate.Limit(queriesPerSecond), 1),
		nowFunc: time.Now,
	}

	if !s.IsConfigured() {
		return s, nil
	}

	svc, err := customsearch.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create customsearch service: %w", err)
	}
	s.svc = svc
	return s, nil
}

// IsConfigured reports whether credentials are present.
func (s *SearchService) IsConfigured() bool {
	return s.cfg.APIKey != "" && s.cfg.SearchEngineID != ""
}

// Search issues one Custom Search call restricted to the allowed
// domains. Failures return an empty list plus the error; callers
// treat that as "no external results".
func (s *SearchService) Search(
	ctx context.Context, query string, opts driven.WebSearchOptions,
) ([]domain.Reference, error) {
	if !s.IsConfigured() || s.svc == nil {
		return nil, domain.ErrSearchUnavailable
	}

	if err := s.bucket.Wait(ctx); err != nil {
		return nil, fmt.Errorf("throttle: %w", err)
	}

	limit := int64(opts.Limit)
	if limit <= 0 || limit > maxResultsPerCall {
		limit = maxResultsPerCall
	}

	q := buildQuery(query, opts)
	logger.Debug("Custom Search query: %q", q)

	resp, err := s.svc.Cse.List().
		Q(q).
		Cx(s.cfg.SearchEngineID).
		Num(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("customsearch: %w", err)
	}

	refs := make([]domain.Reference, 0, len(resp.Items))
	now := s.nowFunc()
	for i, item := range resp.Items {
		if item == nil || item.Link == "" {
			// Unexpected hit shapes are skipped, not fatal.
			continue
		}
		refs = append(refs, normaliseHit(item, now, i))
	}

	logger.Debug("Custom Search: %d hits", len(refs))
	return refs, nil
}

// buildQuery ORs together site: restrictions for each allowed domain
// and appends the raw query plus boost terms.
func buildQuery(query string, opts driven.WebSearchOptions) string {
	var b strings.Builder

	if len(opts.AllowedDomains) > 0 {
		b.WriteString("(")
		for i, d := range opts.AllowedDomains {
			if i > 0 {
				b.WriteString(" OR ")
			}
			b.WriteString("site:")
			b.WriteString(d)
		}
		b.WriteString(") ")
	}

	b.WriteString(query)

	for _, term := range opts.BoostTerms {
		b.WriteString(" ")
		b.WriteString(term)
	}

	return b.String()
}

// normaliseHit maps one search hit into the common reference shape.
// An ECLI in the title or snippet becomes the natural identifier;
// otherwise a timestamp-based surrogate keeps the dedup invariant.
func normaliseHit(item *customsearch.Result, now time.Time, position int) domain.Reference {
	identifier := domain.ExtractECLI(item.Title + " " + item.Snippet)
	category := "jurisprudentie"
	if identifier == "" {
		identifier = domain.SurrogateIdentifier(now, position)
		category = categoriseLink(item.Link)
	}

	return domain.Reference{
		Identifier:  identifier,
		Title:       item.Title,
		Description: item.Snippet,
		Category:    category,
		SourceURL:   item.Link,
		Origin:      domain.OriginExternalSearch,
	}
}

// categoriseLink labels a hit by the database it points into.
func categoriseLink(link string) string {
	switch {
	case strings.Contains(link, "wetten.overheid.nl"):
		return "wetgeving"
	case strings.Contains(link, "lokaleregelgeving.overheid.nl"):
		return "lokale regelgeving"
	case strings.Contains(link, "boetebase.om.nl"):
		return "boetes"
	default:
		return "overig"
	}
}
