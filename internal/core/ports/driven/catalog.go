package driven

import "github.com/wethelder/wethelder/internal/core/domain"

// ReferenceCatalog provides the curated collections the pipeline
// matches against: fine codes, statute topics, the article knowledge
// table and the keyword tables that point into them.
//
// Implementations load from embedded JSON, optionally overridden by
// files on disk that are reloaded on change.
type ReferenceCatalog interface {
	// Lookup resolves an identifier (fine code, article key) to its
	// curated reference. Returns domain.ErrNotFound when unknown.
	Lookup(identifier string) (domain.Reference, error)

	// All returns every curated reference, in catalog order.
	All() []domain.Reference

	// KeywordTables returns the keyword-to-identifier tables, in
	// catalog order.
	KeywordTables() []domain.KeywordTable

	// StatuteTopics returns the curated statute deep links.
	StatuteTopics() []domain.StatuteTopic
}
