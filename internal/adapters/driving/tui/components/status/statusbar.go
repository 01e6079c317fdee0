// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/styles"
)

// State represents what the app is doing, for display.
type State string

const (
	StateReady     State = "ready"
	StateComputing State = "computing"
	StateWatching  State = "watching"
	StateError     State = "error"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	bankCount int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Update is a no-op; the bar is driven through its setters.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the status bar on a single line of the bar's width.
// The key hints are dropped when they do not fit beside the state.
func (s *Bar) View() string {
	style := s.styles.StatusBar
	inner := s.width - style.GetHorizontalFrameSize()

	left := s.renderLeft()
	right := s.renderRight()

	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	content := left + strings.Repeat(" ", max(padding, 1)) + right
	if padding < 1 {
		content = left
	}

	return style.Width(s.width).MaxHeight(1).Render(content)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateComputing:
		return s.styles.Muted.Render("Computing...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateWatching:
		return s.styles.Success.Render(fmt.Sprintf("Watching · %d banks", s.bankCount))
	case StateReady:
		if s.bankCount > 0 {
			return s.styles.Normal.Render(fmt.Sprintf("%d banks", s.bankCount))
		}
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message shown in StateError.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetBankCount sets the number of banks in the current report.
func (s *Bar) SetBankCount(count int) {
	s.bankCount = count
}

// BankCount returns the current bank count.
func (s *Bar) BankCount() int {
	return s.bankCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
