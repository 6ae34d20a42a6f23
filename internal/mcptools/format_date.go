package mcptools

import (
	"context"

	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FormatDateHandler returns the handler function for the format_date MCP tool.
func FormatDateHandler(opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input FormatDateInput) (*mcp.CallToolResult, FormatDateOutput, error) {
	opts = opts.withDefaults()
	return func(ctx context.Context, req *mcp.CallToolRequest, input FormatDateInput) (*mcp.CallToolResult, FormatDateOutput, error) {
		d, err := parseISODate(input.Date, opts.today())
		if err != nil {
			return nil, FormatDateOutput{}, err
		}

		layout := opts.Display
		if input.Format != "" {
			layout, err = dateformat.Compile(input.Format)
			if err != nil {
				return nil, FormatDateOutput{}, err
			}
		}

		return nil, FormatDateOutput{Text: layout.Format(d), Format: layout.String()}, nil
	}
}
