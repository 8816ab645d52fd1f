// Package mcp provides an MCP (Model Context Protocol) server adapter for fieldsort.
// It lets AI assistants sort marked lines and inspect their fields.
package mcp

import "errors"

// ErrMissingSortService is returned when the sort service is not provided.
var ErrMissingSortService = errors.New("mcp: sort service is required")
