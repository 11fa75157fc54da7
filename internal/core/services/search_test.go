package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
)

func TestSearchService_EmptyQuery(t *testing.T) {
	svc := NewSearchService(fineCatalog(), nil, nil)

	_, err := svc.Search(context.Background(), query("   "), driving.SearchOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchService_CatalogOnlyWithoutSearchCredentials(t *testing.T) {
	svc := NewSearchService(fineCatalog(), &mockWebSearch{configured: false}, nil)

	result, err := svc.Search(context.Background(), query("boete voor snelheid"), driving.SearchOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Results)
	assert.Equal(t, domain.ConfidenceLow, result.Assessment.Confidence)
	assert.Contains(t, result.Assessment.Warnings, warnNoSearchCredentials)
	for _, candidate := range result.Results {
		assert.NotEqual(t, domain.OriginExternalSearch, candidate.Reference.Origin)
	}
}

func TestSearchService_MergesExternalHits(t *testing.T) {
	web := &mockWebSearch{
		configured: true,
		hits: []domain.Reference{{
			Identifier: "web-1",
			Title:      "Snelheid op de snelweg",
			SourceURL:  "https://wetten.overheid.nl/BWBR0004825/",
			Origin:     domain.OriginExternalSearch,
		}},
	}

	svc := NewSearchService(fineCatalog(), web, nil)

	result, err := svc.Search(context.Background(), query("boete voor snelheid"), driving.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.ConfidenceHigh, result.Assessment.Confidence)
	assert.Positive(t, result.SourceCounts[domain.OriginKeywordTable])
	assert.Positive(t, result.SourceCounts[domain.OriginExternalSearch])
}

// A ruling surfacing through both the case-law API and web search
// must appear once, keyed by its ECLI.
func TestSearchService_DeduplicatesECLIAcrossProviders(t *testing.T) {
	const ecli = "ECLI:NL:HR:2015:2246"

	caseLaw := &mockCaseLaw{hits: []domain.Reference{{
		Identifier: ecli,
		Title:      "Hoge Raad over snelheid",
		SourceURL:  "https://uitspraken.rechtspraak.nl/details?id=" + ecli,
		Origin:     domain.OriginExternalSearch,
	}}}
	web := &mockWebSearch{
		configured: true,
		hits: []domain.Reference{{
			Identifier: ecli,
			Title:      "Snelheid arrest webresultaat",
			SourceURL:  "https://uitspraken.rechtspraak.nl/details?id=" + ecli,
			Origin:     domain.OriginExternalSearch,
		}},
	}

	svc := NewSearchService(fineCatalog(), web, caseLaw)

	result, err := svc.Search(context.Background(), query("snelheid arrest hoge raad"), driving.SearchOptions{})

	require.NoError(t, err)

	occurrences := 0
	for _, candidate := range result.Results {
		if candidate.Reference.Identifier == ecli {
			occurrences++
			// The case-law API entry arrived first and wins the tie.
			assert.Equal(t, "Hoge Raad over snelheid", candidate.Reference.Title)
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestSearchService_ExternalFailureDegrades(t *testing.T) {
	web := &mockWebSearch{
		configured: true,
		err:        domain.ErrSearchUnavailable,
	}

	svc := NewSearchService(fineCatalog(), web, nil)

	result, err := svc.Search(context.Background(), query("boete voor snelheid"), driving.SearchOptions{})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Results)
	assert.Equal(t, domain.ConfidenceLow, result.Assessment.Confidence)
	assert.Contains(t, result.Assessment.Warnings, warnNoExternalResults)
}

func TestSearchService_SkipExternal(t *testing.T) {
	web := &mockWebSearch{configured: true}

	svc := NewSearchService(fineCatalog(), web, nil)

	_, err := svc.Search(context.Background(), query("boete voor snelheid"), driving.SearchOptions{
		SkipExternal: true,
	})

	require.NoError(t, err)
	assert.Empty(t, web.lastQuery)
}

func TestSearchService_MunicipalityNarrowsDomains(t *testing.T) {
	web := &mockWebSearch{configured: true}

	svc := NewSearchService(fineCatalog(), web, nil)

	_, err := svc.Search(context.Background(),
		query("mag ik in Amsterdam op straat drinken"), driving.SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, localTrustedDomains, web.lastOpts.AllowedDomains)
	assert.Contains(t, web.lastOpts.BoostTerms, "amsterdam")
}

func TestSearchService_SourcesUsedInTrustOrder(t *testing.T) {
	web := &mockWebSearch{
		configured: true,
		hits: []domain.Reference{{
			Identifier: "web-1",
			Title:      "snelheid informatie",
			SourceURL:  "https://wetten.overheid.nl/x",
			Origin:     domain.OriginExternalSearch,
		}},
	}

	svc := NewSearchService(fineCatalog(), web, nil)

	result, err := svc.Search(context.Background(), query("n420 snelheid"), driving.SearchOptions{})

	require.NoError(t, err)
	require.NotEmpty(t, result.Assessment.SourcesUsed)
	assert.Equal(t, string(domain.OriginStructuredDB), result.Assessment.SourcesUsed[0])
}
