package joltage

import (
	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// Selector keeps the best domain.WindowSize digits of a bank as they arrive.
//
// The first WindowSize digits fill the window in order. Every later digit
// first deletes the left element of the leftmost strictly ascending pair,
// if there is one, which frees the last slot for the new digit. Without
// such a pair the digit only replaces the last slot when it is larger.
//
// A Selector serves exactly one bank and is not safe for concurrent use.
type Selector struct {
	window domain.Window
	filled int
}

// NewSelector creates an empty selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Push admits one ASCII digit byte.
// Returns domain.ErrInvalidDigit if c is not '0'-'9'; the window is unchanged.
func (s *Selector) Push(c byte) error {
	if c < '0' || c > '9' {
		return domain.ErrInvalidDigit
	}
	d := c - '0'

	if s.filled < domain.WindowSize {
		s.window[s.filled] = d
		s.filled++
		return nil
	}

	last := domain.WindowSize - 1
	if s.promote() || d > s.window[last] {
		s.window[last] = d
	}
	return nil
}

// promote removes the left element of the leftmost ascending pair by
// shifting the rest of the window one slot to the left.
// Reports whether a pair was found.
func (s *Selector) promote() bool {
	w := &s.window
	for i := 1; i < domain.WindowSize; i++ {
		if w[i] > w[i-1] {
			copy(w[i-1:], w[i:])
			return true
		}
	}
	return false
}

// Filled returns how many digits the window holds, at most domain.WindowSize.
func (s *Selector) Filled() int {
	return s.filled
}

// Window returns the finished window.
// Returns domain.ErrTruncatedBank if fewer than domain.WindowSize digits were pushed.
func (s *Selector) Window() (domain.Window, error) {
	if s.filled < domain.WindowSize {
		return domain.Window{}, domain.ErrTruncatedBank
	}
	return s.window, nil
}

// SelectBank runs a fresh Selector over the digits of one bank.
// Errors are reported as *domain.BankError.
func SelectBank(bank domain.Bank) (domain.Window, error) {
	s := NewSelector()
	for i, c := range bank.Digits {
		if err := s.Push(c); err != nil {
			return domain.Window{}, &domain.BankError{
				Bank:   bank.Index,
				Offset: bank.Offset,
				Column: i + 1,
				Byte:   c,
				Err:    err,
			}
		}
	}

	w, err := s.Window()
	if err != nil {
		return domain.Window{}, &domain.BankError{
			Bank:   bank.Index,
			Offset: bank.Offset,
			Column: s.Filled(),
			Err:    err,
		}
	}
	return w, nil
}
