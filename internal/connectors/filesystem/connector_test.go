package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/core/ports/driven"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "banks.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	t.Run("resolves file URI to absolute path", func(t *testing.T) {
		connector := New("file:///tmp/banks.txt")

		require.NotNil(t, connector)
		assert.Equal(t, "file:///tmp/banks.txt", connector.URI())
		assert.Equal(t, "/tmp/banks.txt", connector.Path())
		assert.Equal(t, DefaultMinInterval, connector.minInterval)
	})

	t.Run("implements InputSource interface", func(t *testing.T) {
		var _ driven.InputSource = New("/tmp/banks.txt")
	})

	t.Run("min interval can be overridden", func(t *testing.T) {
		connector := New("/tmp/banks.txt").WithMinInterval(time.Second)
		assert.Equal(t, time.Second, connector.minInterval)
	})
}

func TestConnector_TypeAndCapabilities(t *testing.T) {
	connector := New("/tmp/banks.txt")

	assert.Equal(t, "filesystem", connector.Type())
	caps := connector.Capabilities()
	assert.True(t, caps.SupportsWatch)
	assert.True(t, caps.Rereadable)
}

func TestConnector_Read(t *testing.T) {
	t.Run("reads file content", func(t *testing.T) {
		path := writeInput(t, "987654321111111\n")
		connector := New(path)

		raw, err := connector.Read(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []byte("987654321111111\n"), raw.Content)
		assert.Equal(t, path, raw.URI)
		assert.NotEmpty(t, raw.ID)
		assert.False(t, raw.ReadAt.IsZero())
	})

	t.Run("each read gets a fresh ID", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))

		first, err := connector.Read(context.Background())
		require.NoError(t, err)
		second, err := connector.Read(context.Background())
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("missing file", func(t *testing.T) {
		connector := New(filepath.Join(t.TempDir(), "missing.txt"))

		_, err := connector.Read(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		connector := New(t.TempDir())

		_, err := connector.Read(context.Background())

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cancelled context", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := connector.Read(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("read after close", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))
		require.NoError(t, connector.Close())

		_, err := connector.Read(context.Background())

		assert.ErrorIs(t, err, domain.ErrSourceClosed)
	})
}

func TestConnector_Watch(t *testing.T) {
	t.Run("missing parent directory", func(t *testing.T) {
		connector := New(filepath.Join(t.TempDir(), "nope", "banks.txt"))

		_, err := connector.Watch(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})

	t.Run("watch after close", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))
		require.NoError(t, connector.Close())

		_, err := connector.Watch(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "closed")
	})

	t.Run("second watch is rejected", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))
		defer connector.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		_, err := connector.Watch(ctx)
		require.NoError(t, err)
		_, err = connector.Watch(ctx)
		assert.Error(t, err)
	})

	t.Run("reports updates to the file", func(t *testing.T) {
		path := writeInput(t, "111111111111\n")
		connector := New(path).WithMinInterval(10 * time.Millisecond)
		defer connector.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		changes, err := connector.Watch(ctx)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("999999999999\n"), 0o644))

		for {
			select {
			case change, ok := <-changes:
				require.True(t, ok, "channel closed before update")
				if change.Type != domain.ChangeUpdated {
					continue
				}
				if string(change.Input.Content) == "999999999999\n" {
					return
				}
			case <-ctx.Done():
				t.Fatal("timed out waiting for update")
			}
		}
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		path := writeInput(t, "111111111111\n")
		connector := New(path).WithMinInterval(10 * time.Millisecond)
		defer connector.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		changes, err := connector.Watch(ctx)
		require.NoError(t, err)

		other := filepath.Join(filepath.Dir(path), "other.txt")
		require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

		select {
		case change := <-changes:
			t.Fatalf("unexpected change: %v", change.Type)
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("channel closes on context cancel", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))
		defer connector.Close()

		ctx, cancel := context.WithCancel(context.Background())
		changes, err := connector.Watch(ctx)
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-changes:
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("channel not closed after cancel")
		}
	})

	t.Run("channel closes on Close", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))

		changes, err := connector.Watch(context.Background())
		require.NoError(t, err)

		require.NoError(t, connector.Close())

		select {
		case _, ok := <-changes:
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("channel not closed after Close")
		}
	})
}

func TestHandleFsEvent(t *testing.T) {
	tests := []struct {
		name           string
		createFile     bool
		otherFile      bool
		operation      fsnotify.Op
		expectedChange bool
		expectedType   domain.ChangeType
	}{
		{
			name:           "write event",
			createFile:     true,
			operation:      fsnotify.Write,
			expectedChange: true,
			expectedType:   domain.ChangeUpdated,
		},
		{
			name:           "create event",
			createFile:     true,
			operation:      fsnotify.Create,
			expectedChange: true,
			expectedType:   domain.ChangeUpdated,
		},
		{
			name:           "write event for a file that vanished",
			createFile:     false,
			operation:      fsnotify.Write,
			expectedChange: true,
			expectedType:   domain.ChangeRemoved,
		},
		{
			name:           "remove event",
			operation:      fsnotify.Remove,
			expectedChange: true,
			expectedType:   domain.ChangeRemoved,
		},
		{
			name:           "rename event",
			operation:      fsnotify.Rename,
			expectedChange: true,
			expectedType:   domain.ChangeRemoved,
		},
		{
			name:           "chmod event",
			createFile:     true,
			operation:      fsnotify.Chmod,
			expectedChange: false,
		},
		{
			name:           "event for another file",
			createFile:     true,
			otherFile:      true,
			operation:      fsnotify.Write,
			expectedChange: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "banks.txt")
			if tt.createFile {
				require.NoError(t, os.WriteFile(path, []byte("123456789012\n"), 0o644))
			}
			connector := New(path)

			eventPath := path
			if tt.otherFile {
				eventPath = filepath.Join(dir, "other.txt")
			}
			change := connector.handleFsEvent(fsnotify.Event{Name: eventPath, Op: tt.operation})

			if !tt.expectedChange {
				assert.Nil(t, change)
				return
			}
			require.NotNil(t, change)
			assert.Equal(t, tt.expectedType, change.Type)
			assert.Equal(t, path, change.Input.URI)
			if tt.expectedType == domain.ChangeUpdated {
				assert.Equal(t, []byte("123456789012\n"), change.Input.Content)
			}
		})
	}

	t.Run("combined operations", func(t *testing.T) {
		path := writeInput(t, "123456789012\n")
		connector := New(path)

		change := connector.handleFsEvent(fsnotify.Event{Name: path, Op: fsnotify.Write | fsnotify.Chmod})

		require.NotNil(t, change)
		assert.Equal(t, domain.ChangeUpdated, change.Type)
	})
}

func TestDrain(t *testing.T) {
	path := "/tmp/banks.txt"
	connector := New(path)

	events := make(chan fsnotify.Event, 4)
	events <- fsnotify.Event{Name: path, Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "/tmp/other.txt", Op: fsnotify.Remove}
	events <- fsnotify.Event{Name: path, Op: fsnotify.Remove}

	last := drain(events, fsnotify.Event{Name: path, Op: fsnotify.Create}, connector.matches)

	assert.Equal(t, fsnotify.Remove, last.Op)
	assert.Equal(t, path, last.Name)
	assert.Empty(t, events)
}

func TestConnector_Close(t *testing.T) {
	t.Run("close without watch", func(t *testing.T) {
		connector := New("/tmp/banks.txt")
		assert.NoError(t, connector.Close())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		connector := New(writeInput(t, "111111111111\n"))
		_, err := connector.Watch(context.Background())
		require.NoError(t, err)

		assert.NoError(t, connector.Close())
		assert.NoError(t, connector.Close())
	})
}
