package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin_TrustRank(t *testing.T) {
	assert.Greater(t, OriginStructuredDB.TrustRank(), OriginKeywordTable.TrustRank())
	assert.Greater(t, OriginKeywordTable.TrustRank(), OriginExternalSearch.TrustRank())
	assert.Greater(t, OriginExternalSearch.TrustRank(), Origin("unknown").TrustRank())
}

func TestMergeReferences_DeduplicatesByIdentifier(t *testing.T) {
	curated := []Reference{
		{Identifier: "N420", Title: "Getinte voorruit", Origin: OriginStructuredDB},
	}
	external := []Reference{
		{Identifier: "N420", Title: "Web hit over N420", Origin: OriginExternalSearch},
		{Identifier: "ECLI:NL:HR:2015:2246", Origin: OriginExternalSearch},
	}

	merged := MergeReferences(curated, external)

	require.Len(t, merged, 2)
	// The curated entry wins the shared identifier.
	assert.Equal(t, "Getinte voorruit", merged[0].Title)
	assert.Equal(t, OriginStructuredDB, merged[0].Origin)
}

func TestMergeReferences_HigherTrustReplacesInPlace(t *testing.T) {
	external := []Reference{
		{Identifier: "V200", Title: "web", Origin: OriginExternalSearch},
	}
	curated := []Reference{
		{Identifier: "V200", Title: "catalogus", Origin: OriginStructuredDB},
	}

	// External arrives first; the curated duplicate still wins but
	// keeps the external entry's position.
	merged := MergeReferences(external, curated)

	require.Len(t, merged, 1)
	assert.Equal(t, "catalogus", merged[0].Title)
}

func TestMergeReferences_EqualTrustFirstWins(t *testing.T) {
	first := []Reference{
		{Identifier: "ECLI:NL:HR:2015:2246", Title: "uitspraken-api", Origin: OriginExternalSearch},
	}
	second := []Reference{
		{Identifier: "ECLI:NL:HR:2015:2246", Title: "webzoekresultaat", Origin: OriginExternalSearch},
	}

	merged := MergeReferences(first, second)

	require.Len(t, merged, 1)
	assert.Equal(t, "uitspraken-api", merged[0].Title)
}

func TestMergeReferences_SkipsEmptyIdentifiers(t *testing.T) {
	merged := MergeReferences([]Reference{
		{Identifier: "", Title: "naamloos"},
		{Identifier: "N420", Origin: OriginStructuredDB},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "N420", merged[0].Identifier)
}

func TestMergeReferences_PreservesInputOrder(t *testing.T) {
	merged := MergeReferences([]Reference{
		{Identifier: "A", Origin: OriginStructuredDB},
		{Identifier: "B", Origin: OriginStructuredDB},
		{Identifier: "C", Origin: OriginExternalSearch},
	})

	require.Len(t, merged, 3)
	assert.Equal(t, "A", merged[0].Identifier)
	assert.Equal(t, "B", merged[1].Identifier)
	assert.Equal(t, "C", merged[2].Identifier)
}

func TestReference_SearchableText(t *testing.T) {
	ref := Reference{
		Identifier:  "N420",
		Title:       "Getinte Voorruit",
		Description: "lichtdoorlatendheid",
		Trefwoorden: []string{"Folie"},
	}

	text := ref.SearchableText()
	assert.Contains(t, text, "n420")
	assert.Contains(t, text, "getinte voorruit")
	assert.Contains(t, text, "folie")
}
