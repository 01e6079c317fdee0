package joltage

import (
	"errors"
	"time"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// Scan runs the full pipeline over stream and returns the total of every
// bank. If visit is non-nil it is called once per completed bank, in order.
//
// Any error aborts the scan; the returned total is then zero.
func Scan(stream []byte, visit func(domain.BankResult)) (uint64, error) {
	if len(stream) == 0 {
		return 0, domain.ErrEmptyInput
	}

	var acc Accumulator
	tok := NewTokenizer(stream)
	for {
		bank, err := tok.Next()
		if errors.Is(err, domain.ErrEndOfStream) {
			break
		}
		if err != nil {
			return 0, err
		}

		w, err := SelectBank(bank)
		if err != nil {
			return 0, err
		}

		v, err := acc.Add(w)
		if err != nil {
			return 0, &domain.BankError{Bank: bank.Index, Offset: bank.Offset, Err: err}
		}

		if visit != nil {
			visit(domain.BankResult{
				Index:  bank.Index,
				Offset: bank.Offset,
				Length: bank.Len(),
				Window: w,
				Value:  v,
			})
		}
	}

	return acc.Total(), nil
}

// ComputeTotal returns the sum of the per-bank maxima of stream.
func ComputeTotal(stream []byte) (uint64, error) {
	return Scan(stream, nil)
}

// Analyse scans stream and returns a report with the per-bank breakdown.
func Analyse(stream []byte) (*domain.Report, error) {
	var banks []domain.BankResult
	total, err := Scan(stream, func(r domain.BankResult) {
		banks = append(banks, r)
	})
	if err != nil {
		return nil, err
	}

	return &domain.Report{
		Total:      total,
		BankCount:  len(banks),
		Banks:      banks,
		ComputedAt: time.Now(),
	}, nil
}
