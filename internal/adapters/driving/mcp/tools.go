package mcp

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/joltage-cli/internal/core/domain"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

// ComputeInput is the input schema for the compute_total tool.
type ComputeInput struct {
	Input string `json:"input,omitempty" jsonschema:"bank lines to fold, one bank of at least 12 digits per line"`
	Path  string `json:"path,omitempty" jsonschema:"path of a local file holding the banks"`
	Banks bool   `json:"banks,omitempty" jsonschema:"include the per-bank breakdown"`
}

// ComputeOutput is the output schema for the compute_total tool.
type ComputeOutput struct {
	Total     uint64       `json:"total"`
	BankCount int          `json:"bank_count"`
	Banks     []BankOutput `json:"banks,omitempty"`
}

// BankOutput is one bank of the breakdown.
type BankOutput struct {
	Index  int    `json:"index"`
	Window string `json:"window"`
	Value  uint64 `json:"value"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "compute_total",
		Description: "Sum, over every bank line, the largest 12-digit number obtained by " +
			"keeping digits in order. Pass the lines inline as input or a file path.",
	}, s.handleComputeTotal)
}

func (s *Server) handleComputeTotal(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ComputeInput,
) (*mcp.CallToolResult, ComputeOutput, error) {
	opts := domain.ComputeOptions{IncludeBanks: input.Banks}

	var (
		report *domain.Report
		err    error
	)
	switch {
	case input.Input != "" && input.Path != "":
		return nil, ComputeOutput{}, ErrAmbiguousInput
	case input.Path == "-":
		return nil, ComputeOutput{}, ErrStdinPath
	case input.Path != "":
		report, err = s.ports.Joltage.Compute(ctx, input.Path, opts)
	case input.Input != "":
		report, err = s.ports.Joltage.ComputeBytes(ctx, "input", []byte(input.Input), opts)
	default:
		return nil, ComputeOutput{}, ErrNoInput
	}
	if err != nil {
		return nil, ComputeOutput{}, err
	}

	if input.Path != "" && s.ports.Settings != nil {
		if err := s.ports.Settings.RecordInput(input.Path); err != nil {
			logger.Warn("Failed to record input: %v", err)
		}
	}

	output := ComputeOutput{
		Total:     report.Total,
		BankCount: report.BankCount,
	}
	for _, b := range report.Banks {
		output.Banks = append(output.Banks, BankOutput{
			Index:  b.Index,
			Window: b.Window.String(),
			Value:  b.Value,
		})
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: strconv.FormatUint(report.Total, 10)}},
	}, output, nil
}
