// Package filesystem reads inputs from local files and watches them for changes.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.InputSource = (*Connector)(nil)

// DefaultMinInterval is the default minimum delay between two change events.
const DefaultMinInterval = 250 * time.Millisecond

// Connector reads a single local file.
type Connector struct {
	uri         string
	path        string
	minInterval time.Duration

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// New creates a connector for the file at uri (a path or file:// URI).
func New(uri string) *Connector {
	return &Connector{
		uri:         uri,
		path:        ResolvePath(uri),
		minInterval: DefaultMinInterval,
	}
}

// WithMinInterval sets the minimum delay between two change events.
// Bursts of filesystem events inside the interval are coalesced into one.
func (c *Connector) WithMinInterval(d time.Duration) *Connector {
	c.minInterval = d
	return c
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// URI returns the URI the connector was created with.
func (c *Connector) URI() string {
	return c.uri
}

// Path returns the resolved absolute path.
func (c *Connector) Path() string {
	return c.path
}

// Capabilities returns what this connector supports.
func (c *Connector) Capabilities() driven.SourceCapabilities {
	return driven.SourceCapabilities{
		SupportsWatch: true,
		Rereadable:    true,
	}
}

// Validate checks that the path exists and is a regular file.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.path)
	if err != nil {
		return fmt.Errorf("input path error: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory: %w", c.path, domain.ErrInvalidInput)
	}
	return nil
}

// Read returns the current content of the file.
func (c *Connector) Read(ctx context.Context) (*domain.RawInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.isClosed() {
		return nil, domain.ErrSourceClosed
	}
	if err := c.Validate(ctx); err != nil {
		return nil, err
	}
	return c.read()
}

func (c *Connector) read() (*domain.RawInput, error) {
	content, err := os.ReadFile(c.path)
	if err != nil {
		return nil, err
	}
	return &domain.RawInput{
		ID:      uuid.New().String(),
		URI:     c.uri,
		Content: content,
		ReadAt:  time.Now(),
	}, nil
}

// Watch listens for changes to the file.
// The parent directory is watched so that editors which replace the file on
// save keep producing events.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.InputChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("watch %s: %w", c.uri, domain.ErrSourceClosed)
	}
	if c.watcher != nil {
		return nil, fmt.Errorf("watch %s: already watching", c.uri)
	}

	dir := filepath.Dir(c.path)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	c.watcher = watcher

	changes := make(chan domain.InputChange, 1)
	go c.watchLoop(ctx, watcher, changes)

	return changes, nil
}

func (c *Connector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.InputChange) {
	defer close(changes)
	defer c.stopWatcher(watcher)

	limiter := rate.NewLimiter(rate.Every(c.minInterval), 1)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !c.matches(event) {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			event = drain(watcher.Events, event, c.matches)

			change := c.handleFsEvent(event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", c.path, err)
		}
	}
}

// drain consumes events already queued for the file and returns the latest.
func drain(events <-chan fsnotify.Event, last fsnotify.Event, matches func(fsnotify.Event) bool) fsnotify.Event {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return last
			}
			if matches(event) {
				last = event
			}
		default:
			return last
		}
	}
}

// matches reports whether event concerns the watched file.
func (c *Connector) matches(event fsnotify.Event) bool {
	return filepath.Clean(event.Name) == c.path
}

// handleFsEvent converts a filesystem event into an input change.
// Returns nil for events that do not concern the file or carry no change.
func (c *Connector) handleFsEvent(event fsnotify.Event) *domain.InputChange {
	if !c.matches(event) {
		return nil
	}

	removed := &domain.InputChange{
		Type:  domain.ChangeRemoved,
		Input: domain.RawInput{URI: c.uri, ReadAt: time.Now()},
	}

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		info, err := os.Stat(c.path)
		if errors.Is(err, os.ErrNotExist) {
			return removed
		}
		if err != nil || info.IsDir() {
			return nil
		}
		raw, err := c.read()
		if err != nil {
			logger.Warn("read %s after change: %v", c.path, err)
			return nil
		}
		return &domain.InputChange{Type: domain.ChangeUpdated, Input: *raw}

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return removed
	}

	return nil
}

func (c *Connector) stopWatcher(watcher *fsnotify.Watcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher == watcher {
		c.watcher = nil
	}
	watcher.Close()
}

func (c *Connector) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close stops any active watch. Safe to call more than once.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}
