// Package mcp provides an MCP (Model Context Protocol) server adapter
// for WetHelder. It lets AI assistants search the curated legal
// reference catalog and the external legal databases.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
