package services

import (
	"errors"
	"strings"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/logger"
)

// KeywordMatcher scans free-text queries for trigger terms and maps
// them to curated references via the catalog's keyword tables.
type KeywordMatcher struct {
	catalog driven.ReferenceCatalog
}

// NewKeywordMatcher creates a matcher over the given catalog.
func NewKeywordMatcher(catalog driven.ReferenceCatalog) *KeywordMatcher {
	return &KeywordMatcher{catalog: catalog}
}

// Match returns the curated references triggered by the query.
//
// Two passes run over the raw text. Direct-identifier detection first:
// code-like tokens (N420, V101) are uppercased and looked up straight
// in the catalog, bypassing keyword matching. Then every keyword table
// is tested with a plain substring match against the lower-cased
// query. Identifiers are deduplicated within the pass; unknown
// identifiers and keywords without a catalog entry are silently
// ignored.
func (m *KeywordMatcher) Match(query domain.SearchQuery) []domain.Reference {
	lower := query.Lower()
	seen := make(map[string]bool)
	var matched []domain.Reference

	add := func(identifier string, origin domain.Origin) {
		if seen[identifier] {
			return
		}
		ref, err := m.catalog.Lookup(identifier)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger.Warn("Catalog lookup %s: %v", identifier, err)
			}
			return
		}
		ref.Origin = origin
		seen[identifier] = true
		matched = append(matched, ref)
	}

	// Direct identifier hits carry catalog trust, not keyword trust.
	for _, code := range domain.ExtractCodes(query.Text) {
		add(code, domain.OriginStructuredDB)
	}

	for _, table := range m.catalog.KeywordTables() {
		for keyword, identifiers := range table.Entries {
			if !strings.Contains(lower, keyword) {
				continue
			}
			for _, id := range identifiers {
				add(id, domain.OriginKeywordTable)
			}
		}
	}

	// Statute topics join via their own keyword lists.
	for _, topic := range m.catalog.StatuteTopics() {
		for _, keyword := range topic.Keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if seen[topic.Topic] {
				break
			}
			seen[topic.Topic] = true
			matched = append(matched, domain.Reference{
				Identifier:  topic.Topic,
				Title:       topic.Title,
				SourceURL:   topic.URL,
				Category:    "wetgeving",
				Origin:      domain.OriginKeywordTable,
				Trefwoorden: topic.Keywords,
			})
			break
		}
	}

	logger.Debug("Keyword matcher: %d candidates for %q", len(matched), query.Text)
	return matched
}
