package mcp

import (
	"github.com/shawnhcorey/Field-Sort/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Sorter runs sorts and extractions.
	Sorter driving.SortService

	// Settings exposes the configured defaults. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Sorter == nil {
		return ErrMissingSortService
	}
	return nil
}
