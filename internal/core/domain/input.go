package domain

import "time"

// RawInput represents opaque bytes fetched by an input source.
type RawInput struct {
	// ID uniquely identifies this read of the input.
	ID string

	// URI is the original location (file path, "-" for stdin).
	URI string

	// Content is the raw byte stream.
	Content []byte

	// ReadAt is when the content was read.
	ReadAt time.Time
}

// ChangeType represents the type of input change.
type ChangeType int

const (
	// ChangeUpdated indicates the input was created or rewritten.
	ChangeUpdated ChangeType = iota

	// ChangeRemoved indicates the input was deleted or renamed away.
	ChangeRemoved
)

// String returns the string representation.
func (c ChangeType) String() string {
	switch c {
	case ChangeUpdated:
		return "updated"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// InputChange represents a change event from a watched input source.
type InputChange struct {
	// Type is the kind of change.
	Type ChangeType

	// Input is the affected input. Content is empty for ChangeRemoved.
	Input RawInput
}
