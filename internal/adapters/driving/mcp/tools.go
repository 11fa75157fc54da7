package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
)

// SearchInput is the input schema for the reference search tool.
type SearchInput struct {
	Query    string `json:"query" jsonschema:"the legal question or keywords to search references for"`
	Location string `json:"location,omitempty" jsonschema:"optional municipality for local-ordinance questions, e.g. Amsterdam"`
	Year     int    `json:"year,omitempty" jsonschema:"optional year filter for case law"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the reference search tool.
type SearchOutput struct {
	Results    []ReferenceOutput `json:"results"`
	Count      int               `json:"count"`
	Confidence string            `json:"confidence"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// ReferenceOutput represents a single ranked reference.
type ReferenceOutput struct {
	Identifier    string `json:"identifier"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	LegalBasis    string `json:"legal_basis,omitempty"`
	MonetaryValue string `json:"monetary_value,omitempty"`
	Category      string `json:"category,omitempty"`
	SourceURL     string `json:"source_url,omitempty"`
	Score         int    `json:"score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "zoek_referenties",
		Description: "Zoek Nederlandse juridische referenties: wetsartikelen, boetecodes en jurisprudentie",
	}, s.handleSearch)
}

// handleSearch handles the reference search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	query := domain.NewSearchQuery(input.Query, domain.QueryContext{
		Location: input.Location,
		Year:     input.Year,
	})
	result, err := s.ports.Search.Search(ctx, query, driving.SearchOptions{Limit: limit})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results:    make([]ReferenceOutput, len(result.Results)),
		Count:      len(result.Results),
		Confidence: string(result.Assessment.Confidence),
		Warnings:   result.Assessment.Warnings,
	}

	for i := range result.Results {
		ref := result.Results[i].Reference
		output.Results[i] = ReferenceOutput{
			Identifier:    ref.Identifier,
			Title:         ref.Title,
			Description:   ref.Description,
			LegalBasis:    ref.LegalBasis,
			MonetaryValue: ref.MonetaryValue,
			Category:      ref.Category,
			SourceURL:     ref.SourceURL,
			Score:         result.Results[i].Score,
		}
	}

	return nil, output, nil
}
