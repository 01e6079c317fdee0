package services

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputFormat    = "output.format"
	keyOutputShowBanks = "output.show_banks"
	keyWatchIntervalMS = "watch.min_interval_ms"
	keyRecentInputs    = "history.recent_inputs"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format:    s.getOutputFormat(defaults.Output.Format),
			ShowBanks: s.getBool(keyOutputShowBanks, defaults.Output.ShowBanks),
		},
		Watch: domain.WatchSettings{
			MinInterval: s.getWatchInterval(defaults.Watch.MinInterval),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyOutputShowBanks, settings.Output.ShowBanks); err != nil {
		return fmt.Errorf("save output show_banks: %w", err)
	}
	if err := s.configStore.Set(keyWatchIntervalMS, settings.Watch.MinInterval.Milliseconds()); err != nil {
		return fmt.Errorf("save watch interval: %w", err)
	}
	return nil
}

// SetOutputFormat updates the default output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid output format: %s", format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Format = format
	return s.Save(settings)
}

// SetShowBanks toggles the per-bank breakdown by default.
func (s *SettingsService) SetShowBanks(show bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.ShowBanks = show
	return s.Save(settings)
}

// SetWatchInterval updates the minimum delay between watch recomputations.
func (s *SettingsService) SetWatchInterval(interval time.Duration) error {
	watch := domain.WatchSettings{MinInterval: interval}
	if !watch.IsValid() {
		return fmt.Errorf("watch interval must be at least %s, got %s", domain.MinWatchInterval, interval)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Watch = watch
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// RecordInput moves uri to the front of the recent inputs list.
// Paths are stored absolute so the history resolves from any directory.
// Standard input is never recorded.
func (s *SettingsService) RecordInput(uri string) error {
	if uri == "" || uri == "-" {
		return nil
	}
	uri = absInput(uri)

	recent := []string{uri}
	for _, prev := range s.RecentInputs() {
		if prev == uri {
			continue
		}
		if len(recent) == domain.MaxRecentInputs {
			break
		}
		recent = append(recent, prev)
	}

	if err := s.configStore.Set(keyRecentInputs, recent); err != nil {
		return fmt.Errorf("save recent inputs: %w", err)
	}
	return nil
}

// absInput turns a bare path or file:// URI into a clean absolute path.
func absInput(uri string) string {
	path := strings.TrimPrefix(uri, "file://")
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// RecentInputs returns remembered input paths, most recent first.
func (s *SettingsService) RecentInputs() []string {
	return s.configStore.GetStringSlice(keyRecentInputs)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getOutputFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyOutputFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

func (s *SettingsService) getWatchInterval(defaultVal time.Duration) time.Duration {
	ms := s.configStore.GetInt(keyWatchIntervalMS)
	if ms == 0 {
		return defaultVal
	}
	interval := time.Duration(ms) * time.Millisecond
	if !(domain.WatchSettings{MinInterval: interval}).IsValid() {
		return defaultVal
	}
	return interval
}
