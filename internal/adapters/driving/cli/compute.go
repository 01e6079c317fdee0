package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

var (
	computeJSON  bool
	computeBanks bool
	computeWatch bool
)

var computeCmd = &cobra.Command{
	Use:   "compute [path|-]",
	Short: "Compute the total joltage of an input",
	Long: `Reads banks from a file, or from stdin when the path is "-" or omitted,
and prints the sum of every bank's maximum 12-digit joltage.

Any malformed bank aborts the run; no partial total is printed.

Examples:
  joltage compute banks.txt
  cat banks.txt | joltage compute
  joltage compute --json --banks banks.txt
  joltage compute --watch banks.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "output the report as JSON")
	computeCmd.Flags().BoolVar(&computeBanks, "banks", false, "include the per-bank breakdown")
	computeCmd.Flags().BoolVarP(&computeWatch, "watch", "w", false, "recompute whenever the file changes")
	rootCmd.AddCommand(computeCmd)
}

// outputOptions is the merge of stored settings and command flags.
type outputOptions struct {
	format    domain.OutputFormat
	showBanks bool
}

func resolveOutputOptions() outputOptions {
	out := outputOptions{format: domain.OutputFormatText}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			out.format = settings.Output.Format
			out.showBanks = settings.Output.ShowBanks
		} else {
			logger.Warn("Failed to load settings: %v", err)
		}
	}
	if computeJSON {
		out.format = domain.OutputFormatJSON
	}
	if computeBanks {
		out.showBanks = true
	}
	return out
}

func runCompute(cmd *cobra.Command, args []string) error {
	if joltageService == nil {
		return errors.New("joltage service not configured")
	}

	uri := "-"
	if len(args) == 1 {
		uri = args[0]
	}

	out := resolveOutputOptions()
	opts := domain.ComputeOptions{IncludeBanks: out.showBanks}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if computeWatch {
		return runComputeWatch(ctx, cmd, uri, opts, out)
	}

	report, err := joltageService.Compute(ctx, uri, opts)
	if err != nil {
		return fmt.Errorf("compute failed: %w", err)
	}
	recordInput(uri)

	return printReport(cmd, report, out)
}

func runComputeWatch(
	ctx context.Context, cmd *cobra.Command, uri string, opts domain.ComputeOptions, out outputOptions,
) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	updates, err := joltageService.Watch(ctx, uri, opts)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	recordInput(uri)

	for update := range updates {
		if update.Err != nil {
			cmd.PrintErrf("error: %v\n", update.Err)
			continue
		}
		if err := printReport(cmd, update.Report, out); err != nil {
			return err
		}
	}
	return nil
}

func recordInput(uri string) {
	if settingsService == nil {
		return
	}
	if err := settingsService.RecordInput(uri); err != nil {
		logger.Warn("Failed to record input: %v", err)
	}
}

func printReport(cmd *cobra.Command, report *domain.Report, out outputOptions) error {
	if out.format == domain.OutputFormatJSON {
		return printReportJSON(cmd, report, out.showBanks)
	}
	printReportText(cmd, report, out.showBanks)
	return nil
}

// reportJSON is the JSON shape of a report. The total is a JSON number.
type reportJSON struct {
	Source     string              `json:"source"`
	Total      uint64              `json:"total"`
	BankCount  int                 `json:"bank_count"`
	Banks      []domain.BankResult `json:"banks,omitempty"`
	ComputedAt string              `json:"computed_at"`
}

func printReportJSON(cmd *cobra.Command, report *domain.Report, showBanks bool) error {
	payload := reportJSON{
		Source:     report.Source,
		Total:      report.Total,
		BankCount:  report.BankCount,
		ComputedAt: report.ComputedAt.UTC().Format(time.RFC3339),
	}
	if showBanks {
		payload.Banks = report.Banks
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printReportText(cmd *cobra.Command, report *domain.Report, showBanks bool) {
	if showBanks {
		for _, b := range report.Banks {
			cmd.Printf("%d\t%s\n", b.Index, b.Window)
		}
	}
	cmd.Printf("%d\n", report.Total)
}
