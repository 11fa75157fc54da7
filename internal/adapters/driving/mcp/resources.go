package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wethelder/wethelder/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for WetHelder resources.
	uriScheme = "wethelder://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full curated catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalogus",
		Name:        "catalogus",
		Description: "The curated catalog of legal references: fine codes, articles and statute topics",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// Template for a single reference by identifier.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "referenties/{identifier}",
		Name:        "referentie",
		Description: "One curated reference by its identifier, e.g. N420",
		MIMEType:    "application/json",
	}, s.handleReferenceResource)
}

// handleCatalogResource returns the full curated catalog.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	data, err := json.MarshalIndent(s.ports.Catalog.All(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReferenceResource returns one curated reference.
func (s *Server) handleReferenceResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	identifier := extractIdentifier(req.Params.URI)
	if identifier == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	ref, err := s.ports.Catalog.Lookup(identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("looking up reference: %w", err)
	}

	data, err := json.MarshalIndent(ref, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reference: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractIdentifier extracts the identifier from a URI like
// wethelder://referenties/{identifier}.
func extractIdentifier(uri string) string {
	const prefix = uriScheme + "referenties/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
