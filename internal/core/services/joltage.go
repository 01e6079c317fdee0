package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driving"
	"github.com/custodia-labs/joltage-cli/internal/joltage"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

// Ensure JoltageService implements the interface.
var _ driving.JoltageService = (*JoltageService)(nil)

// ErrNoSourceFactory is returned when a URI is computed without a source factory.
var ErrNoSourceFactory = errors.New("source factory not configured")

// JoltageService runs the bank pipeline over inputs opened through a SourceFactory.
type JoltageService struct {
	sources driven.SourceFactory
}

// NewJoltageService creates a new joltage service.
// sources may be nil if only ComputeBytes is used.
func NewJoltageService(sources driven.SourceFactory) *JoltageService {
	return &JoltageService{
		sources: sources,
	}
}

// Compute reads the input at uri and returns its report.
func (s *JoltageService) Compute(
	ctx context.Context, uri string, opts domain.ComputeOptions,
) (*domain.Report, error) {
	logger.Section("Compute")
	logger.Debug("Input: %s", uri)

	src, err := s.open(uri)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	raw, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", uri, err)
	}

	return s.compute(ctx, raw, opts)
}

// ComputeBytes returns the report for data already held in memory.
func (s *JoltageService) ComputeBytes(
	ctx context.Context, name string, data []byte, opts domain.ComputeOptions,
) (*domain.Report, error) {
	logger.Section("Compute")
	logger.Debug("Input: %s (%d bytes in memory)", name, len(data))

	return s.compute(ctx, &domain.RawInput{URI: name, Content: data, ReadAt: time.Now()}, opts)
}

// Watch computes the input at uri once, then again on every change.
func (s *JoltageService) Watch(
	ctx context.Context, uri string, opts domain.ComputeOptions,
) (<-chan domain.ReportUpdate, error) {
	src, err := s.open(uri)
	if err != nil {
		return nil, err
	}

	if !src.Capabilities().SupportsWatch {
		src.Close()
		return nil, fmt.Errorf("watch %s: %w", uri, domain.ErrNotImplemented)
	}

	changes, err := src.Watch(ctx)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("watch %s: %w", uri, err)
	}

	updates := make(chan domain.ReportUpdate, 1)

	go func() {
		defer close(updates)
		defer src.Close()

		send := func(u domain.ReportUpdate) bool {
			select {
			case updates <- u:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send(s.readAndCompute(ctx, src, opts)) {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				logger.Debug("Input %s %s", uri, change.Type)

				var update domain.ReportUpdate
				if change.Type == domain.ChangeRemoved {
					update.Err = fmt.Errorf("%s: input removed", uri)
				} else {
					update.Report, update.Err = s.compute(ctx, &change.Input, opts)
				}
				if !send(update) {
					return
				}
			}
		}
	}()

	return updates, nil
}

func (s *JoltageService) open(uri string) (driven.InputSource, error) {
	if s.sources == nil {
		return nil, ErrNoSourceFactory
	}
	src, err := s.sources.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	return src, nil
}

func (s *JoltageService) readAndCompute(
	ctx context.Context, src driven.InputSource, opts domain.ComputeOptions,
) domain.ReportUpdate {
	raw, err := src.Read(ctx)
	if err != nil {
		return domain.ReportUpdate{Err: fmt.Errorf("read %s: %w", src.URI(), err)}
	}
	report, err := s.compute(ctx, raw, opts)
	return domain.ReportUpdate{Report: report, Err: err}
}

// compute runs the pipeline over one raw input.
func (s *JoltageService) compute(
	ctx context.Context, raw *domain.RawInput, opts domain.ComputeOptions,
) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer logger.Timed("Pipeline")()

	report := &domain.Report{
		InputID: raw.ID,
		Source:  raw.URI,
	}

	total, err := joltage.Scan(raw.Content, func(r domain.BankResult) {
		report.BankCount++
		if opts.IncludeBanks {
			report.Banks = append(report.Banks, r)
		}
	})
	if err != nil {
		logger.Warn("Computation of %s failed: %v", raw.URI, err)
		return nil, err
	}

	report.Total = total
	report.ComputedAt = time.Now()

	logger.Info("Folded %d banks from %s", report.BankCount, raw.URI)
	logger.Debug("Total: %d", report.Total)

	return report, nil
}
