// Package tui provides the interactive report viewer for joltage.
// It is a driving adapter: all work goes through the driving ports.
package tui

import (
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Joltage computes and watches reports.
	Joltage driving.JoltageService

	// Settings supplies the recent input history. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Joltage == nil {
		return ErrMissingJoltageService
	}
	return nil
}
