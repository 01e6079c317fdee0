package domain

import (
	"errors"
	"fmt"
)

// Pipeline errors. All of them abort the computation of a whole input;
// no partial total is ever reported alongside one of these.
var (
	// ErrEmptyInput indicates the byte stream contains zero bytes.
	ErrEmptyInput = errors.New("empty input")

	// ErrTruncatedBank indicates a bank ended before WindowSize digits were read.
	ErrTruncatedBank = errors.New("truncated bank")

	// ErrInvalidDigit indicates a byte in digit position is not '0'-'9'.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrTotalOverflow indicates the running total no longer fits in 64 bits.
	ErrTotalOverflow = errors.New("total overflows uint64")

	// ErrEndOfStream is returned by the tokenizer once the stream is exhausted.
	// It is a control signal and never surfaces from the pipeline.
	ErrEndOfStream = errors.New("end of stream")
)

// Source errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available for a source.
	ErrNotImplemented = errors.New("not implemented")

	// ErrSourceClosed indicates the input source has been closed.
	ErrSourceClosed = errors.New("source closed")

	// ErrNoPipedInput indicates stdin was selected but is an interactive terminal.
	ErrNoPipedInput = errors.New("no input piped to stdin")
)

// BankError locates a pipeline failure inside the byte stream.
// It unwraps to one of the pipeline sentinels above.
type BankError struct {
	// Bank is the 1-based bank (line) number.
	Bank int

	// Offset is the byte offset in the stream where the bank starts.
	Offset int

	// Column is the 1-based digit position inside the bank, CR bytes excluded.
	// Zero when the failure is not tied to a single byte.
	Column int

	// Byte is the offending byte for ErrInvalidDigit.
	Byte byte

	// Err is the underlying sentinel.
	Err error
}

// Error implements error.
func (e *BankError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidDigit):
		return fmt.Sprintf("bank %d, column %d: %v %q", e.Bank, e.Column, e.Err, e.Byte)
	case errors.Is(e.Err, ErrTruncatedBank):
		return fmt.Sprintf("bank %d: %v: %d of %d digits", e.Bank, e.Err, e.Column, WindowSize)
	default:
		return fmt.Sprintf("bank %d: %v", e.Bank, e.Err)
	}
}

// Unwrap returns the underlying sentinel.
func (e *BankError) Unwrap() error {
	return e.Err
}
