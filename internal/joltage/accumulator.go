package joltage

import (
	"math/bits"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// Fold interprets a window as a base-10 integer using Horner's rule.
func Fold(w domain.Window) uint64 {
	return w.Value()
}

// Accumulator sums folded windows into a running total.
// The zero value is ready to use.
type Accumulator struct {
	total uint64
	count int
}

// Add folds w and adds it to the total, returning the folded value.
// Returns domain.ErrTotalOverflow, leaving the total untouched, if the sum
// does not fit in 64 bits.
func (a *Accumulator) Add(w domain.Window) (uint64, error) {
	v := Fold(w)
	sum, carry := bits.Add64(a.total, v, 0)
	if carry != 0 {
		return v, domain.ErrTotalOverflow
	}
	a.total = sum
	a.count++
	return v, nil
}

// Total returns the running total.
func (a *Accumulator) Total() uint64 {
	return a.total
}

// Count returns how many windows have been added.
func (a *Accumulator) Count() int {
	return a.count
}
