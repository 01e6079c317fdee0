package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui/views/report"
	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

// App is the report viewer following the Elm architecture.
type App struct {
	ports *Ports
	ctx   context.Context
	input string
	opts  domain.ComputeOptions

	styles     *styles.Styles
	keymap     *keymap.KeyMap
	reportView *report.View
	statusBar  *status.Bar
	help       help.Model
	showHelp   bool

	// updates is the active watch subscription, nil when not watching.
	updates <-chan domain.ReportUpdate

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a report viewer for the input at path.
func NewApp(ports *Ports, path string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	switch strings.TrimSpace(path) {
	case "":
		return nil, ErrMissingInput
	case "-":
		return nil, ErrStdinInput
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		input:      path,
		opts:       domain.ComputeOptions{IncludeBanks: true},
		styles:     s,
		keymap:     km,
		reportView: report.NewView(s, km),
		statusBar:  status.NewBar(s, km),
		help:       help.New(),
	}, nil
}

// WithContext sets the context used for computations and the watch.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts watching the input; the watch delivers the first report.
func (a *App) Init() tea.Cmd {
	a.statusBar.SetState(status.StateComputing)
	return tea.Batch(
		tea.SetWindowTitle("joltage - "+a.input),
		a.startWatch(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.statusBar.SetWidth(msg.Width)
		a.help.Width = msg.Width
		a.reportView.SetDimensions(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.WatchStarted:
		a.updates = msg.Updates
		return a, a.waitForUpdate()

	case messages.WatchFailed:
		logger.Debug("Watch unavailable for %s: %v", a.input, msg.Err)
		return a, a.compute()

	case messages.WatchEnded:
		a.updates = nil
		if a.statusBar.State() == status.StateWatching {
			a.statusBar.SetState(status.StateReady)
		}
		return a, nil

	case messages.ReportComputed:
		a.applyReport(msg)
		if msg.FromWatch {
			return a, a.waitForUpdate()
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		return a, nil

	case key.Matches(msg, a.keymap.Recompute):
		a.statusBar.SetState(status.StateComputing)
		return a, a.compute()
	}

	var cmd tea.Cmd
	a.reportView, cmd = a.reportView.Update(msg)
	return a, cmd
}

func (a *App) applyReport(msg messages.ReportComputed) {
	if msg.Err != nil {
		a.reportView.SetError(msg.Err)
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return
	}

	a.reportView.SetReport(msg.Report)
	a.statusBar.SetMessage("")
	a.statusBar.SetBankCount(msg.Report.BankCount)
	if a.updates != nil {
		a.statusBar.SetState(status.StateWatching)
	} else {
		a.statusBar.SetState(status.StateReady)
	}
}

// compute runs a single computation.
func (a *App) compute() tea.Cmd {
	ctx, input, opts, svc := a.ctx, a.input, a.opts, a.ports.Joltage
	return func() tea.Msg {
		r, err := svc.Compute(ctx, input, opts)
		if err == nil {
			a.recordInput(input)
		}
		return messages.ReportComputed{Report: r, Err: err}
	}
}

func (a *App) startWatch() tea.Cmd {
	ctx, input, opts, svc := a.ctx, a.input, a.opts, a.ports.Joltage
	return func() tea.Msg {
		updates, err := svc.Watch(ctx, input, opts)
		if err != nil {
			return messages.WatchFailed{Err: err}
		}
		a.recordInput(input)
		return messages.WatchStarted{Updates: updates}
	}
}

// recordInput adds input to the recent inputs history.
func (a *App) recordInput(input string) {
	if a.ports.Settings == nil {
		return
	}
	if err := a.ports.Settings.RecordInput(input); err != nil {
		logger.Warn("Failed to record input: %v", err)
	}
}

// waitForUpdate blocks on the next watch update.
func (a *App) waitForUpdate() tea.Cmd {
	updates := a.updates
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return messages.WatchEnded{}
		}
		return messages.ReportComputed{Report: u.Report, Err: u.Err, FromWatch: true}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.reportView.View())

	if a.showHelp {
		b.WriteString("\n")
		b.WriteString(a.help.View(a.keymap))
		b.WriteString("\n")
	}

	used := strings.Count(b.String(), "\n")
	if pad := a.height - used - 1; pad > 0 {
		b.WriteString(strings.Repeat("\n", pad))
	}
	b.WriteString(a.statusBar.View())

	return b.String()
}

// Input returns the path being viewed.
func (a *App) Input() string {
	return a.input
}

// Watching reports whether a watch subscription is active.
func (a *App) Watching() bool {
	return a.updates != nil
}
