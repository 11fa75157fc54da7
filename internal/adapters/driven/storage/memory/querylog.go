// Package memory provides in-memory driven adapters, used as defaults
// when no persistent backend is configured and as fakes in tests.
package memory

import (
	"context"
	"sync"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

// Ensure QueryLogStore implements the interface.
var _ driven.QueryLogStore = (*QueryLogStore)(nil)

// QueryLogStore keeps appended records in memory. Records do not
// survive a restart.
type QueryLogStore struct {
	mu      sync.Mutex
	records []domain.QueryRecord
}

// NewQueryLogStore creates an empty in-memory query log.
func NewQueryLogStore() *QueryLogStore {
	return &QueryLogStore{}
}

// Append stores one answered question.
func (s *QueryLogStore) Append(_ context.Context, record domain.QueryRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Recent returns the most recent records, newest first.
func (s *QueryLogStore) Recent(_ context.Context, limit int) ([]domain.QueryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}

	out := make([]domain.QueryRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *QueryLogStore) Close() error {
	return nil
}
