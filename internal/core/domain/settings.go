package domain

import "time"

const unknownDescription = "Unknown"

// OutputFormat defines how a report is rendered on the command line.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText prints the total as a bare decimal string.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON prints the full report as JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (decimal total)"
	case OutputFormatJSON:
		return "JSON (full report)"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON}
}

// MaxRecentInputs bounds the remembered input history.
const MaxRecentInputs = 10

// MinWatchInterval is the smallest accepted delay between two recomputations
// of a watched input.
const MinWatchInterval = 10 * time.Millisecond

// OutputSettings configures how results are printed.
type OutputSettings struct {
	// Format selects text or JSON rendering.
	Format OutputFormat

	// ShowBanks includes the per-bank breakdown.
	ShowBanks bool
}

// WatchSettings configures watch mode.
type WatchSettings struct {
	// MinInterval is the minimum delay between two recomputations.
	// Bursts of file events inside this interval are coalesced.
	MinInterval time.Duration
}

// IsValid returns true if the watch settings can be used.
func (w WatchSettings) IsValid() bool {
	return w.MinInterval >= MinWatchInterval
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Output OutputSettings
	Watch  WatchSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Format:    OutputFormatText,
			ShowBanks: false,
		},
		Watch: WatchSettings{
			MinInterval: 250 * time.Millisecond,
		},
	}
}
