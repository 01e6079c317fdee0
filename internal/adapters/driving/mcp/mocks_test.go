package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// mockJoltageService is a mock implementation of driving.JoltageService.
type mockJoltageService struct {
	report   *domain.Report
	err      error
	lastURI  string
	lastData string
	lastOpts domain.ComputeOptions
}

func (m *mockJoltageService) Compute(
	_ context.Context, uri string, opts domain.ComputeOptions,
) (*domain.Report, error) {
	m.lastURI, m.lastOpts = uri, opts
	return m.report, m.err
}

func (m *mockJoltageService) ComputeBytes(
	_ context.Context, _ string, data []byte, opts domain.ComputeOptions,
) (*domain.Report, error) {
	m.lastData, m.lastOpts = string(data), opts
	return m.report, m.err
}

func (m *mockJoltageService) Watch(
	_ context.Context, _ string, _ domain.ComputeOptions,
) (<-chan domain.ReportUpdate, error) {
	return nil, domain.ErrNotImplemented
}

// mockSettingsService is a mock implementation of driving.SettingsService.
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

func (m *mockSettingsService) SetOutputFormat(domain.OutputFormat) error { return m.err }

func (m *mockSettingsService) SetShowBanks(bool) error { return m.err }

func (m *mockSettingsService) SetWatchInterval(time.Duration) error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) RecordInput(uri string) error {
	m.recent = append([]string{uri}, m.recent...)
	return m.err
}

func (m *mockSettingsService) RecentInputs() []string { return m.recent }
