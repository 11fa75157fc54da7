package rechtspraak

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uitspraken/zoeken", r.URL.Path)
		assert.Equal(t, "snelheid", r.URL.Query().Get("q"))
		assert.Equal(t, "2015", r.URL.Query().Get("jaar"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"ecli": "ECLI:NL:HR:2015:2246", "title": "Snelheidsarrest", "court": "Hoge Raad", "date": "2015-09-01"},
			{"title": "Uitspraak zonder identifier"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	refs, err := client.Search(context.Background(), "snelheid", driven.CaseLawFilters{Year: 2015}, 10)

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "ECLI:NL:HR:2015:2246", refs[0].Identifier)
	assert.Equal(t, "jurisprudentie", refs[0].Category)
	assert.Equal(t, domain.OriginExternalSearch, refs[0].Origin)
	assert.Contains(t, refs[0].Description, "Hoge Raad")
}

func TestClient_SearchECLIFromTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results": [
			{"title": "ECLI:NL:RBAMS:2020:123 over huurrecht"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	refs, err := client.Search(context.Background(), "huur", driven.CaseLawFilters{}, 10)

	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "ECLI:NL:RBAMS:2020:123", refs[0].Identifier)
	// The link falls back to the public case-law viewer.
	assert.Contains(t, refs[0].SourceURL, "uitspraken.rechtspraak.nl")
}

func TestClient_SearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	_, err := client.Search(context.Background(), "snelheid", driven.CaseLawFilters{}, 10)

	assert.ErrorIs(t, err, domain.ErrCaseLawUnavailable)
}
