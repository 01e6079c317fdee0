package driving

import (
	"time"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputFormat updates the default output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetShowBanks toggles the per-bank breakdown by default.
	SetShowBanks(show bool) error

	// SetWatchInterval updates the minimum delay between watch recomputations.
	SetWatchInterval(interval time.Duration) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// RecordInput remembers a computed input path, most recent first.
	RecordInput(uri string) error

	// RecentInputs returns remembered input paths, most recent first.
	RecentInputs() []string
}
