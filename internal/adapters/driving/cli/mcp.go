package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over stdio.

The server exposes the compute_total tool, which accepts bank lines inline
or a file path, and resources for recent inputs and settings.

Client configuration:
  {
    "mcpServers": {
      "joltage": {
        "command": "/path/to/joltage",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Joltage:  joltageService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports, version)
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
