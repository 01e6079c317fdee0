package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long:  `View and change the default output format, bank breakdown and watch interval.`,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsFormatCmd = &cobra.Command{
	Use:   "format <text|json>",
	Short: "Set the default output format",
	Long: `Set the default output format of the compute command.

Available formats:
  text - the total as a bare decimal number
  json - the full report as a JSON object`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"text", "json"},
	RunE:      runSettingsFormat,
}

var settingsBanksCmd = &cobra.Command{
	Use:       "banks <on|off>",
	Short:     "Show or hide the per-bank breakdown by default",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runSettingsBanks,
}

var settingsWatchIntervalCmd = &cobra.Command{
	Use:   "watch-interval <ms>",
	Short: "Set the minimum delay between watch recomputations",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsWatchInterval,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsFormatCmd)
	settingsCmd.AddCommand(settingsBanksCmd)
	settingsCmd.AddCommand(settingsWatchIntervalCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Printf("  Show banks: %s\n", onOff(settings.Output.ShowBanks))
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Minimum interval: %s\n", settings.Watch.MinInterval)

	if recent := settingsService.RecentInputs(); len(recent) > 0 {
		cmd.Println()
		cmd.Println("[Recent inputs]")
		for i, uri := range recent {
			cmd.Printf("  %d. %s\n", i+1, uri)
		}
	}

	return nil
}

func runSettingsFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	format := domain.OutputFormat(strings.ToLower(args[0]))
	if !format.IsValid() {
		return fmt.Errorf("invalid format %q: choose one of %s", args[0], formatChoices())
	}
	if err := settingsService.SetOutputFormat(format); err != nil {
		return fmt.Errorf("failed to save format: %w", err)
	}

	cmd.Printf("Output format set to: %s\n", format.Description())
	return nil
}

func runSettingsBanks(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	show, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetShowBanks(show); err != nil {
		return fmt.Errorf("failed to save banks setting: %w", err)
	}

	cmd.Printf("Per-bank breakdown: %s\n", onOff(show))
	return nil
}

func runSettingsWatchInterval(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	ms, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid interval %q: expected milliseconds", args[0])
	}
	interval := time.Duration(ms) * time.Millisecond
	if err := settingsService.SetWatchInterval(interval); err != nil {
		return fmt.Errorf("failed to save watch interval: %w", err)
	}

	cmd.Printf("Watch interval set to: %s\n", interval)
	return nil
}

func formatChoices() string {
	formats := domain.AllOutputFormats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid value %q: expected on or off", s)
	}
	return b, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
