package driven

import (
	"context"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// InputSource reads the byte stream of one input.
// Each source type (filesystem, stdin) implements this interface.
type InputSource interface {
	// Type returns the source type identifier.
	Type() string

	// URI returns the location this source reads from.
	URI() string

	// Capabilities returns what this source supports.
	Capabilities() SourceCapabilities

	// Read returns the full current content of the input.
	Read(ctx context.Context) (*domain.RawInput, error)

	// Watch listens for changes to the input.
	// Only available if SupportsWatch is true; otherwise returns domain.ErrNotImplemented.
	// The channel is closed when ctx is cancelled or the source is closed.
	Watch(ctx context.Context) (<-chan domain.InputChange, error)

	// Close releases resources. Safe to call more than once.
	Close() error
}

// SourceCapabilities describes what an input source supports.
type SourceCapabilities struct {
	// SupportsWatch indicates the source can push change events.
	SupportsWatch bool

	// Rereadable indicates Read may be called more than once.
	// False for one-shot streams such as stdin.
	Rereadable bool
}

// SourceFactory opens input sources by URI.
type SourceFactory interface {
	// Open returns the InputSource for uri.
	// "-" selects standard input; anything else is a file path or file:// URI.
	Open(uri string) (InputSource, error)
}
