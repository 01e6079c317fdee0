package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.BankCount())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestBar_View(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		message   string
		bankCount int
		want      string
	}{
		{name: "ready without report", state: StateReady, want: "Ready"},
		{name: "ready with banks", state: StateReady, bankCount: 4, want: "4 banks"},
		{name: "computing", state: StateComputing, want: "Computing..."},
		{name: "watching", state: StateWatching, bankCount: 200, want: "Watching · 200 banks"},
		{name: "error with message", state: StateError, message: "truncated bank", want: "Error: truncated bank"},
		{name: "error without message", state: StateError, want: "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			bar.SetState(tt.state)
			bar.SetMessage(tt.message)
			bar.SetBankCount(tt.bankCount)

			view := bar.View()

			assert.Contains(t, view, tt.want)
			assert.Contains(t, view, "r: recompute")
			assert.Contains(t, view, "q: quit")
			assert.NotContains(t, view, "\n")
			assert.Equal(t, 120, lipgloss.Width(view))
		})
	}
}

func TestBar_ViewFitsOneLine(t *testing.T) {
	widths := []int{30, 60, 80, 200}

	for _, width := range widths {
		bar := NewBar(nil, nil)
		bar.SetWidth(width)
		bar.SetState(StateWatching)
		bar.SetBankCount(200)

		view := bar.View()

		assert.Equal(t, 1, lipgloss.Height(view), "width %d", width)
		assert.Contains(t, view, "Watching", "width %d", width)
	}
}

func TestBar_NarrowWidth(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(10)

	var view string
	assert.NotPanics(t, func() { view = bar.View() })
	assert.Equal(t, 1, lipgloss.Height(view))
	assert.NotContains(t, view, "q: quit")
}
