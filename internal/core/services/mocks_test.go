package services

import (
	"context"
	"strings"
	"time"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

// testTime is a fixed instant for deterministic surrogate keys.
func testTime() time.Time {
	return time.UnixMilli(1700000000000)
}

// mockCatalog is an in-memory driven.ReferenceCatalog for tests.
type mockCatalog struct {
	refs   map[string]domain.Reference
	tables []domain.KeywordTable
	topics []domain.StatuteTopic
}

var _ driven.ReferenceCatalog = (*mockCatalog)(nil)

func newMockCatalog(refs ...domain.Reference) *mockCatalog {
	c := &mockCatalog{refs: make(map[string]domain.Reference)}
	for _, ref := range refs {
		c.refs[strings.ToUpper(ref.Identifier)] = ref
	}
	return c
}

func (c *mockCatalog) Lookup(identifier string) (domain.Reference, error) {
	ref, ok := c.refs[strings.ToUpper(identifier)]
	if !ok {
		return domain.Reference{}, domain.ErrNotFound
	}
	return ref, nil
}

func (c *mockCatalog) All() []domain.Reference {
	out := make([]domain.Reference, 0, len(c.refs))
	for _, ref := range c.refs {
		out = append(out, ref)
	}
	return out
}

func (c *mockCatalog) KeywordTables() []domain.KeywordTable { return c.tables }

func (c *mockCatalog) StatuteTopics() []domain.StatuteTopic { return c.topics }

// mockWebSearch is a canned driven.WebSearchService.
type mockWebSearch struct {
	configured bool
	hits       []domain.Reference
	err        error

	lastQuery string
	lastOpts  driven.WebSearchOptions
}

var _ driven.WebSearchService = (*mockWebSearch)(nil)

func (m *mockWebSearch) Search(
	_ context.Context, query string, opts driven.WebSearchOptions,
) ([]domain.Reference, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.hits, m.err
}

func (m *mockWebSearch) IsConfigured() bool { return m.configured }

// mockCaseLaw is a canned driven.CaseLawService.
type mockCaseLaw struct {
	hits []domain.Reference
	err  error
}

var _ driven.CaseLawService = (*mockCaseLaw)(nil)

func (m *mockCaseLaw) Search(
	_ context.Context, _ string, _ driven.CaseLawFilters, _ int,
) ([]domain.Reference, error) {
	return m.hits, m.err
}

// mockLLM is a canned driven.LLMService.
type mockLLM struct {
	answer    string
	chatErr   error
	streamErr error

	// chunks split the answer when streaming; defaults to one chunk.
	chunks []string
}

var _ driven.LLMService = (*mockLLM)(nil)

func (m *mockLLM) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return m.answer, m.chatErr
}

func (m *mockLLM) Stream(
	_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions, fn driven.StreamFunc,
) (string, error) {
	chunks := m.chunks
	if chunks == nil {
		chunks = []string{m.answer}
	}

	var accumulated strings.Builder
	for _, chunk := range chunks {
		if err := fn(chunk); err != nil {
			return accumulated.String(), err
		}
		accumulated.WriteString(chunk)
	}
	return accumulated.String(), m.streamErr
}

func (m *mockLLM) ModelName() string            { return "mock-model" }
func (m *mockLLM) Ping(_ context.Context) error { return nil }
func (m *mockLLM) Close() error                 { return nil }

// mockQueryLog captures appended records.
type mockQueryLog struct {
	records []domain.QueryRecord
	err     error
}

var _ driven.QueryLogStore = (*mockQueryLog)(nil)

func (m *mockQueryLog) Append(_ context.Context, record domain.QueryRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockQueryLog) Close() error { return nil }

// mockLimiter is a scriptable driven.RateLimiter.
type mockLimiter struct {
	allowed    bool
	remaining  int
	checkErr   error
	increments int
}

var _ driven.RateLimiter = (*mockLimiter)(nil)

func (m *mockLimiter) Check(_ context.Context, _ string) (bool, int, error) {
	return m.allowed, m.remaining, m.checkErr
}

func (m *mockLimiter) Increment(_ context.Context, _ string) error {
	m.increments++
	return nil
}
