package connectors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/custodia-labs/joltage-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/joltage-cli/internal/connectors/stdin"
	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
)

// StdinURI selects standard input.
const StdinURI = "-"

// Ensure Factory implements the interface.
var _ driven.SourceFactory = (*Factory)(nil)

// Factory opens connectors by URI.
type Factory struct {
	stdin         io.Reader
	watchInterval time.Duration
}

// NewFactory creates a factory reading "-" from os.Stdin and coalescing
// file change bursts shorter than watchInterval.
func NewFactory(watchInterval time.Duration) *Factory {
	return &Factory{
		stdin:         os.Stdin,
		watchInterval: watchInterval,
	}
}

// WithStdin replaces the reader used for "-".
func (f *Factory) WithStdin(r io.Reader) *Factory {
	f.stdin = r
	return f
}

// Open returns the connector for uri.
func (f *Factory) Open(uri string) (driven.InputSource, error) {
	uri = strings.TrimSpace(uri)

	switch {
	case uri == "":
		return nil, fmt.Errorf("empty input path: %w", domain.ErrInvalidInput)
	case uri == StdinURI:
		return stdin.New(f.stdin), nil
	case strings.Contains(uri, "://") && !strings.HasPrefix(uri, "file://"):
		return nil, fmt.Errorf("unsupported input scheme in %q: %w", uri, domain.ErrInvalidInput)
	default:
		conn := filesystem.New(uri)
		if f.watchInterval > 0 {
			conn.WithMinInterval(f.watchInterval)
		}
		return conn, nil
	}
}
