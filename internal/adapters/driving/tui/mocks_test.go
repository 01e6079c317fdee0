package tui

import (
	"context"
	"time"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// mockJoltageService implements driving.JoltageService for testing.
type mockJoltageService struct {
	ComputeFunc func(ctx context.Context, uri string, opts domain.ComputeOptions) (*domain.Report, error)
	WatchFunc   func(ctx context.Context, uri string, opts domain.ComputeOptions) (<-chan domain.ReportUpdate, error)
}

func (m *mockJoltageService) Compute(
	ctx context.Context, uri string, opts domain.ComputeOptions,
) (*domain.Report, error) {
	if m.ComputeFunc != nil {
		return m.ComputeFunc(ctx, uri, opts)
	}
	return &domain.Report{Source: uri, Total: 3121910778619, BankCount: 4}, nil
}

func (m *mockJoltageService) ComputeBytes(
	_ context.Context, name string, _ []byte, _ domain.ComputeOptions,
) (*domain.Report, error) {
	return &domain.Report{Source: name}, nil
}

func (m *mockJoltageService) Watch(
	ctx context.Context, uri string, opts domain.ComputeOptions,
) (<-chan domain.ReportUpdate, error) {
	if m.WatchFunc != nil {
		return m.WatchFunc(ctx, uri, opts)
	}
	return nil, domain.ErrNotImplemented
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	recorded []string
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := domain.DefaultAppSettings()
	return &s, nil
}

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetOutputFormat(domain.OutputFormat) error { return nil }

func (m *mockSettingsService) SetShowBanks(bool) error { return nil }

func (m *mockSettingsService) SetWatchInterval(time.Duration) error { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) RecordInput(uri string) error {
	m.recorded = append(m.recorded, uri)
	return nil
}

func (m *mockSettingsService) RecentInputs() []string { return m.recorded }
