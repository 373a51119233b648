// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Heropedia. It lets AI assistants browse and filter the hero
// catalogue through tools.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalogue service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
