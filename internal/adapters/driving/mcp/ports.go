package mcp

import (
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Joltage computes reports.
	Joltage driving.JoltageService

	// Settings backs the settings and recent-inputs resources. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Joltage == nil {
		return ErrMissingJoltageService
	}
	return nil
}
