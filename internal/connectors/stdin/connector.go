// Package stdin reads an input from the process standard input.
package stdin

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
)

// URI is the conventional name for standard input.
const URI = "-"

// Ensure Connector implements the interface.
var _ driven.InputSource = (*Connector)(nil)

// Connector drains a reader once.
type Connector struct {
	r          io.Reader
	isTerminal func() bool

	mu       sync.Mutex
	consumed bool
	closed   bool
}

// New creates a connector reading from r.
// When r is a terminal there is nothing piped in and Read fails.
func New(r io.Reader) *Connector {
	return &Connector{
		r:          r,
		isTerminal: terminalCheck(r),
	}
}

func terminalCheck(r io.Reader) func() bool {
	f, ok := r.(*os.File)
	if !ok {
		return func() bool { return false }
	}
	return func() bool { return term.IsTerminal(int(f.Fd())) }
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "stdin"
}

// URI returns "-".
func (c *Connector) URI() string {
	return URI
}

// Capabilities returns what this connector supports.
func (c *Connector) Capabilities() driven.SourceCapabilities {
	return driven.SourceCapabilities{}
}

// Read drains the reader. A second call fails.
func (c *Connector) Read(ctx context.Context) (*domain.RawInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, domain.ErrSourceClosed
	}
	if c.consumed {
		return nil, fmt.Errorf("stdin already consumed: %w", domain.ErrInvalidInput)
	}
	if c.isTerminal() {
		return nil, domain.ErrNoPipedInput
	}

	content, err := io.ReadAll(c.r)
	c.consumed = true
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return &domain.RawInput{
		ID:      uuid.New().String(),
		URI:     URI,
		Content: content,
		ReadAt:  time.Now(),
	}, nil
}

// Watch is not supported for standard input.
func (c *Connector) Watch(_ context.Context) (<-chan domain.InputChange, error) {
	return nil, domain.ErrNotImplemented
}

// Close marks the connector closed. The underlying reader is left open.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
