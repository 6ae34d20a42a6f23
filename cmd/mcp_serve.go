package cmd

import (
	"context"

	"github.com/chris-regnier/datepick/internal/logging"
	"github.com/chris-regnier/datepick/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the date tools
over stdio transport, using the configured display and input formats.

Available tools:
  - parse_date: Strictly parse text as a date
  - month_grid: Six-week calendar grid for a month
  - format_date: Format an ISO date with a pattern

Example usage in an MCP client config:
  {
    "mcpServers": {
      "datepick": {
        "command": "/path/to/datepick",
        "args": ["mcp-serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	log := logging.Logger()
	server := mcptools.CreateMCPServer(mcptools.Options{
		Display: display,
		Formats: formats,
		Now:     now,
		Logger:  log,
	})

	// stdout is reserved for the protocol; logs go to stderr or the log file.
	log.Info("starting MCP server",
		zap.String("transport", "stdio"),
		zap.String("display_format", display.String()),
	)

	// Blocks until the transport is closed.
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
