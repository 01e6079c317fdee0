package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
)

// mockSource is an in-memory InputSource.
type mockSource struct {
	mu       sync.Mutex
	uri      string
	content  []byte
	readErr  error
	watchErr error
	caps     driven.SourceCapabilities
	changes  chan domain.InputChange
	closed   bool
}

func newMockSource(uri, content string) *mockSource {
	return &mockSource{
		uri:     uri,
		content: []byte(content),
		caps:    driven.SourceCapabilities{SupportsWatch: true, Rereadable: true},
		changes: make(chan domain.InputChange, 4),
	}
}

func (m *mockSource) Type() string { return "mock" }

func (m *mockSource) URI() string { return m.uri }

func (m *mockSource) Capabilities() driven.SourceCapabilities { return m.caps }

func (m *mockSource) Read(ctx context.Context) (*domain.RawInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return &domain.RawInput{ID: "raw-1", URI: m.uri, Content: m.content}, nil
}

func (m *mockSource) Watch(_ context.Context) (<-chan domain.InputChange, error) {
	if m.watchErr != nil {
		return nil, m.watchErr
	}
	return m.changes, nil
}

func (m *mockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockSource) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// mockFactory returns registered sources by URI.
type mockFactory struct {
	sources map[string]*mockSource
}

func newMockFactory(sources ...*mockSource) *mockFactory {
	f := &mockFactory{sources: make(map[string]*mockSource)}
	for _, s := range sources {
		f.sources[s.uri] = s
	}
	return f
}

func (f *mockFactory) Open(uri string) (driven.InputSource, error) {
	src, ok := f.sources[uri]
	if !ok {
		return nil, errors.New("no such input")
	}
	return src, nil
}
