package driving

import (
	"context"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// JoltageService computes bank totals for inputs.
type JoltageService interface {
	// Compute reads the input at uri and returns its report.
	// uri is a file path, a file:// URI, or "-" for standard input.
	Compute(ctx context.Context, uri string, opts domain.ComputeOptions) (*domain.Report, error)

	// ComputeBytes returns the report for data already held in memory.
	// name is recorded as the report source.
	ComputeBytes(ctx context.Context, name string, data []byte, opts domain.ComputeOptions) (*domain.Report, error)

	// Watch computes the input at uri once, then again on every change.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, uri string, opts domain.ComputeOptions) (<-chan domain.ReportUpdate, error)
}
