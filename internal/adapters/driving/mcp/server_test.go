package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
)

type stubSearchService struct {
	result    driving.SearchResult
	err       error
	lastQuery domain.SearchQuery
	lastOpts  driving.SearchOptions
}

func (s *stubSearchService) Search(
	_ context.Context, query domain.SearchQuery, opts driving.SearchOptions,
) (driving.SearchResult, error) {
	s.lastQuery = query
	s.lastOpts = opts
	return s.result, s.err
}

func TestNewServer_RequiresSearchService(t *testing.T) {
	_, err := NewServer(&Ports{})

	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestServer_HandleSearch(t *testing.T) {
	search := &stubSearchService{
		result: driving.SearchResult{
			Results: []domain.ScoredCandidate{
				{
					Reference: domain.Reference{
						Identifier:    "N420",
						Title:         "Getinte voorruit",
						MonetaryValue: "290",
					},
					Score: 18,
				},
			},
			Assessment: domain.ReliabilityAssessment{
				Confidence: domain.ConfidenceHigh,
				Warnings:   []string{},
			},
		},
	}
	server, err := NewServer(&Ports{Search: search})
	require.NoError(t, err)

	input := SearchInput{Query: "getinte voorruit", Location: "amsterdam", Year: 2024}
	_, output, err := server.handleSearch(context.Background(), nil, input)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	assert.Equal(t, "N420", output.Results[0].Identifier)
	assert.Equal(t, "290", output.Results[0].MonetaryValue)
	assert.Equal(t, string(domain.ConfidenceHigh), output.Confidence)

	assert.Equal(t, "amsterdam", search.lastQuery.Context.Location)
	assert.Equal(t, 2024, search.lastQuery.Context.Year)
	// The default limit applies when the caller omits one.
	assert.Equal(t, 10, search.lastOpts.Limit)
}

func TestServer_HandleSearchPropagatesError(t *testing.T) {
	search := &stubSearchService{err: domain.ErrInvalidInput}
	server, err := NewServer(&Ports{Search: search})
	require.NoError(t, err)

	_, _, err = server.handleSearch(context.Background(), nil, SearchInput{Query: "  "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
