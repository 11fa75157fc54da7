// Package rechtspraak provides a case-law adapter for the
// rechtspraak.nl search API.
package rechtspraak

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CaseLawService = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.rechtspraak.nl"
	DefaultTimeout = 15 * time.Second
)

// Config holds the case-law API configuration.
type Config struct {
	// BaseURL is the API endpoint (default: https://api.rechtspraak.nl).
	BaseURL string

	// Timeout is the request timeout (default: 15s).
	Timeout time.Duration
}

// Client queries the case-law API and normalises rulings into
// references keyed by their ECLI.
type Client struct {
	client  *http.Client
	baseURL string
}

// caseDocument is one ruling as returned by the API.
type caseDocument struct {
	ECLI     string   `json:"ecli"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Date     string   `json:"date"`
	Court    string   `json:"court"`
	Articles []string `json:"articles"`
	Link     string   `json:"link"`
}

// searchResponse is the API's search result envelope.
type searchResponse struct {
	Results []caseDocument `json:"results"`
}

// NewClient creates a case-law API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Search queries the API. Rulings missing an ECLI are skipped; a
// transport or non-2xx failure returns an error the caller treats as
// "no case law found".
func (c *Client) Search(
	ctx context.Context, query string, filters driven.CaseLawFilters, limit int,
) ([]domain.Reference, error) {
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("max", strconv.Itoa(limit))
	if filters.Year > 0 {
		params.Set("jaar", strconv.Itoa(filters.Year))
	}
	if filters.Court != "" {
		params.Set("instantie", filters.Court)
	}
	if filters.CaseType != "" {
		params.Set("rechtsgebied", filters.CaseType)
	}

	endpoint := c.baseURL + "/uitspraken/zoeken?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCaseLawUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCaseLawUnavailable, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	refs := make([]domain.Reference, 0, len(parsed.Results))
	for _, doc := range parsed.Results {
		ref, ok := normaliseCase(doc)
		if !ok {
			logger.Debug("Skipping ruling without ECLI: %q", doc.Title)
			continue
		}
		refs = append(refs, ref)
	}

	return refs, nil
}

// normaliseCase maps one ruling into the common reference shape.
func normaliseCase(doc caseDocument) (domain.Reference, bool) {
	ecli := doc.ECLI
	if ecli == "" {
		// Some feeds embed the ECLI in the title instead.
		ecli = domain.ExtractECLI(doc.Title)
	}
	if ecli == "" {
		return domain.Reference{}, false
	}

	title := doc.Title
	if title == "" {
		title = ecli
	}

	link := doc.Link
	if link == "" {
		link = "https://uitspraken.rechtspraak.nl/details?id=" + url.QueryEscape(ecli)
	}

	description := doc.Summary
	if doc.Court != "" || doc.Date != "" {
		description = strings.TrimSpace(doc.Court + " " + doc.Date + ". " + description)
	}

	return domain.Reference{
		Identifier:  ecli,
		Title:       title,
		Description: description,
		LegalBasis:  strings.Join(doc.Articles, ", "),
		Category:    "jurisprudentie",
		SourceURL:   link,
		Origin:      domain.OriginExternalSearch,
	}, true
}
