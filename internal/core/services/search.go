package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
	"github.com/wethelder/wethelder/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs the reference search-and-rank pipeline: keyword
// matching against the curated catalog and external search fan out
// concurrently, the results are merged with identifier dedup, scored,
// ranked and annotated with a reliability label.
type SearchService struct {
	catalog   driven.ReferenceCatalog
	matcher   *KeywordMatcher
	scorer    *Scorer
	annotator *Annotator
	webSearch driven.WebSearchService
	caseLaw   driven.CaseLawService
}

// NewSearchService creates a new search service. The webSearch and
// caseLaw parameters are optional (can be nil); their absence lowers
// confidence instead of failing requests.
func NewSearchService(
	catalog driven.ReferenceCatalog,
	webSearch driven.WebSearchService,
	caseLaw driven.CaseLawService,
) *SearchService {
	return &SearchService{
		catalog:   catalog,
		matcher:   NewKeywordMatcher(catalog),
		scorer:    NewScorer(),
		annotator: NewAnnotator(),
		webSearch: webSearch,
		caseLaw:   caseLaw,
	}
}

// Search runs the pipeline for one query.
func (s *SearchService) Search(
	ctx context.Context, query domain.SearchQuery, opts driving.SearchOptions,
) (driving.SearchResult, error) {
	logger.Section("Reference Search")
	logger.Debug("Query: %q", query.Text)

	if query.IsEmpty() {
		return driving.SearchResult{}, fmt.Errorf("search: %w", domain.ErrInvalidInput)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	searchConfigured := s.webSearch != nil && s.webSearch.IsConfigured()
	runExternal := searchConfigured && !opts.SkipExternal

	// Catalog matching and external search fan out, then merge once
	// both legs resolve. A failed external leg degrades confidence
	// rather than failing the request.
	var (
		curated     []domain.Reference
		external    []domain.Reference
		externalErr error
		caseLawRefs []domain.Reference
		wg          sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		curated = s.matcher.Match(query)
	}()

	if runExternal {
		wg.Add(1)
		go func() {
			defer wg.Done()
			external, externalErr = s.externalSearch(ctx, query)
		}()
	}

	if s.caseLaw != nil && !opts.SkipExternal {
		wg.Add(1)
		go func() {
			defer wg.Done()
			caseLawRefs = s.caseLawSearch(ctx, query, limit)
		}()
	}

	wg.Wait()

	externalSucceeded := runExternal && externalErr == nil
	if externalErr != nil {
		logger.Warn("External search failed, continuing catalog-only: %v", externalErr)
	}

	externalHits := append(caseLawRefs, external...) //nolint:gocritic // new slice intended
	merged := domain.MergeReferences(curated, externalHits)
	logger.Debug("Merged %d curated + %d external into %d candidates",
		len(curated), len(externalHits), len(merged))

	ranked := s.scorer.Score(query, merged, limit)
	logger.Info("Ranked results: %d", len(ranked))

	assessment := s.annotator.Assess(AssessmentInput{
		Query:                   query,
		SearchConfigured:        searchConfigured,
		ExternalSearchSucceeded: externalSucceeded,
		ExternalHits:            externalHits,
		CuratedCount:            len(curated),
	})

	counts := make(map[domain.Origin]int)
	for _, c := range ranked {
		counts[c.Reference.Origin]++
	}
	assessment.SourcesUsed = sourcesUsed(counts)

	return driving.SearchResult{
		Results:      ranked,
		Assessment:   assessment,
		SourceCounts: counts,
	}, nil
}

// externalSearch builds the domain-restricted web query. A detected
// municipality narrows the domain set and biases ranking toward its
// local regulations; otherwise the national trusted set is used.
func (s *SearchService) externalSearch(ctx context.Context, query domain.SearchQuery) ([]domain.Reference, error) {
	domains := nationalTrustedDomains
	var boost []string

	municipality := detectMunicipality(query.Lower())
	if municipality == "" && query.Context.Location != "" {
		municipality = detectMunicipality(query.Context.Location)
	}
	if municipality != "" {
		domains = localTrustedDomains
		boost = []string{municipality, "APV"}
		logger.Debug("Municipality detected: %s", municipality)
	}

	return s.webSearch.Search(ctx, query.Text, driven.WebSearchOptions{
		AllowedDomains: domains,
		BoostTerms:     boost,
		Limit:          DefaultResultLimit,
	})
}

// caseLawSearch queries the case-law API; failures are logged and
// produce no hits.
func (s *SearchService) caseLawSearch(ctx context.Context, query domain.SearchQuery, limit int) []domain.Reference {
	refs, err := s.caseLaw.Search(ctx, query.Text, driven.CaseLawFilters{
		Year:     query.Context.Year,
		Court:    query.Context.Court,
		CaseType: query.Context.CaseType,
	}, limit)
	if err != nil {
		logger.Warn("Case-law search failed: %v", err)
		return nil
	}
	logger.Debug("Case-law search: %d rulings", len(refs))
	return refs
}

// sourcesUsed lists contributing origins in trust order.
func sourcesUsed(counts map[domain.Origin]int) []string {
	order := []domain.Origin{
		domain.OriginStructuredDB,
		domain.OriginKeywordTable,
		domain.OriginExternalSearch,
	}
	used := make([]string, 0, len(counts))
	for _, o := range order {
		if counts[o] > 0 {
			used = append(used, string(o))
		}
	}
	return used
}
