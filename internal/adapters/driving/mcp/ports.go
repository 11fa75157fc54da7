package mcp

import (
	"github.com/wethelder/wethelder/internal/core/ports/driven"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs the reference search-and-rank pipeline.
	Search driving.SearchService

	// Catalog exposes the curated reference collections. Optional;
	// without it the catalog resources read as empty.
	Catalog driven.ReferenceCatalog
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Catalog is optional
	return nil
}
