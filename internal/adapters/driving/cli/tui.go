package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [path]",
	Short: "Launch the interactive report viewer",
	Long: `Launch the terminal report viewer for a bank file.

The viewer shows the total and the selected 12-digit window of every bank,
and recomputes automatically when the file changes. Without a path the most
recently computed file is opened.

Controls:
  ↑/k, ↓/j - Scroll banks
  g, G     - First / last bank
  r        - Recompute
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// tuiInput picks the explicit path or the most recent input.
func tuiInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if settingsService != nil {
		if recent := settingsService.RecentInputs(); len(recent) > 0 {
			return recent[0], nil
		}
	}
	return "", errors.New("no input given and no recent input to reopen")
}

func runTUI(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	path, err := tuiInput(args)
	if err != nil {
		return err
	}

	ports := &tui.Ports{
		Joltage:  joltageService,
		Settings: settingsService,
	}

	app, err := tui.NewApp(ports, path)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
