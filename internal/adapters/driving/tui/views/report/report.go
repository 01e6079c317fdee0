// Package report provides the view showing a computed joltage report.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// headerLines is the number of lines above the first bank row.
const headerLines = 7

// View renders the total and a scrollable per-bank table.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	report *domain.Report
	err    error

	selected int
	offset   int

	width  int
	height int
}

// NewView creates a new report view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// SetReport replaces the displayed report and clears any error.
// The selection is kept when the new report still has that bank.
func (v *View) SetReport(r *domain.Report) {
	v.report = r
	v.err = nil
	v.move(0)
}

// SetError records a failed computation. The last good report stays visible.
func (v *View) SetError(err error) {
	v.err = err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.move(0)
}

// Report returns the displayed report.
func (v *View) Report() *domain.Report {
	return v.report
}

// Err returns the last computation error.
func (v *View) Err() error {
	return v.err
}

// Selected returns the index of the highlighted bank.
func (v *View) Selected() int {
	return v.selected
}

// Offset returns the index of the first visible bank.
func (v *View) Offset() int {
	return v.offset
}

// Update handles scrolling keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, v.keymap.Up):
		v.move(-1)
	case key.Matches(keyMsg, v.keymap.Down):
		v.move(1)
	case key.Matches(keyMsg, v.keymap.PageUp):
		v.move(-v.rows())
	case key.Matches(keyMsg, v.keymap.PageDown):
		v.move(v.rows())
	case key.Matches(keyMsg, v.keymap.Top):
		v.move(-v.bankCount())
	case key.Matches(keyMsg, v.keymap.Bottom):
		v.move(v.bankCount())
	}
	return v, nil
}

func (v *View) bankCount() int {
	if v.report == nil {
		return 0
	}
	return len(v.report.Banks)
}

// rows is the number of bank rows that fit on screen.
func (v *View) rows() int {
	return max(v.height-headerLines, 1)
}

func (v *View) move(delta int) {
	n := v.bankCount()
	if n == 0 {
		v.selected, v.offset = 0, 0
		return
	}

	v.selected = min(max(v.selected+delta, 0), n-1)

	rows := v.rows()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+rows {
		v.offset = v.selected - rows + 1
	}
	v.offset = min(v.offset, max(n-rows, 0))
}

// View renders the report.
func (v *View) View() string {
	var b strings.Builder

	if v.report == nil {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render(v.err.Error()))
			return b.String()
		}
		return v.styles.Muted.Render("Computing...")
	}

	r := v.report
	b.WriteString(v.styles.Title.Render("Joltage · " + r.Source))
	b.WriteString("\n\n")
	b.WriteString(v.field("Total", v.styles.Total.Render(fmt.Sprintf("%d", r.Total))))
	b.WriteString(v.field("Banks", v.styles.Normal.Render(fmt.Sprintf("%d", r.BankCount))))
	b.WriteString(v.field("Computed", v.styles.Muted.Render(r.ComputedAt.Format("15:04:05"))))

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Last recompute failed: " + v.err.Error()))
	}
	b.WriteString("\n")

	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %-6s %-10s %-7s %s", "Bank", "Offset", "Digits", "Window")))
	b.WriteString("\n")

	end := min(v.offset+v.rows(), len(r.Banks))
	for i := v.offset; i < end; i++ {
		bank := r.Banks[i]
		cursor := "  "
		row := fmt.Sprintf("%-6d %-10d %-7d %s", bank.Index, bank.Offset, bank.Length, bank.Window)
		if i == v.selected {
			cursor = "> "
			row = v.styles.Selected.Render(row)
		} else {
			row = v.styles.Digits.Render(row)
		}
		b.WriteString(cursor + row + "\n")
	}

	return b.String()
}

func (v *View) field(label, value string) string {
	return v.styles.Label.Render(label) + value + "\n"
}
