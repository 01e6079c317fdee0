package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// mockJoltageService implements driving.JoltageService for CLI tests.
type mockJoltageService struct {
	report  *domain.Report
	err     error
	updates []domain.ReportUpdate

	lastURI  string
	lastOpts domain.ComputeOptions
}

func (m *mockJoltageService) Compute(
	_ context.Context, uri string, opts domain.ComputeOptions,
) (*domain.Report, error) {
	m.lastURI, m.lastOpts = uri, opts
	return m.report, m.err
}

func (m *mockJoltageService) ComputeBytes(
	_ context.Context, name string, _ []byte, opts domain.ComputeOptions,
) (*domain.Report, error) {
	m.lastURI, m.lastOpts = name, opts
	return m.report, m.err
}

func (m *mockJoltageService) Watch(
	_ context.Context, uri string, opts domain.ComputeOptions,
) (<-chan domain.ReportUpdate, error) {
	m.lastURI, m.lastOpts = uri, opts
	if m.err != nil {
		return nil, m.err
	}
	ch := make(chan domain.ReportUpdate, len(m.updates))
	for _, u := range m.updates {
		ch <- u
	}
	close(ch)
	return ch, nil
}

// mockSettingsService implements driving.SettingsService for CLI tests.
type mockSettingsService struct {
	settings domain.AppSettings
	recent   []string
	err      error
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(s *domain.AppSettings) error {
	m.settings = *s
	return m.err
}

func (m *mockSettingsService) SetOutputFormat(f domain.OutputFormat) error {
	m.settings.Output.Format = f
	return m.err
}

func (m *mockSettingsService) SetShowBanks(show bool) error {
	m.settings.Output.ShowBanks = show
	return m.err
}

func (m *mockSettingsService) SetWatchInterval(d time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.settings.Watch.MinInterval = d
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) RecordInput(uri string) error {
	if uri != "-" {
		m.recent = append([]string{uri}, m.recent...)
	}
	return nil
}

func (m *mockSettingsService) RecentInputs() []string {
	return m.recent
}

// setupTestServices installs mock services and returns a restore func.
func setupTestServices(j *mockJoltageService, s *mockSettingsService) func() {
	oldJoltage, oldSettings, oldBootstrap := joltageService, settingsService, bootstrap
	joltageService = nil
	settingsService = nil
	if j != nil {
		joltageService = j
	}
	if s != nil {
		settingsService = s
	}
	bootstrap = nil
	return func() {
		joltageService, settingsService, bootstrap = oldJoltage, oldSettings, oldBootstrap
		computeJSON, computeBanks, computeWatch = false, false, false
		verbose, configDir = false, ""
		resetHelpFlags(rootCmd)
		rootCmd.SetArgs(nil)
	}
}

// resetHelpFlags clears --help on cmd and its children. Cobra keeps the
// parsed value on the command, so a help run would otherwise leak into the
// next Execute of the same command.
func resetHelpFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}
	for _, child := range cmd.Commands() {
		resetHelpFlags(child)
	}
}
