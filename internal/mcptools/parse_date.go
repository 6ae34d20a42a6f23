package mcptools

import (
	"context"
	"errors"

	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ParseDateHandler returns the handler function for the parse_date MCP tool.
// Text that is not a date is a successful call with valid set to false.
func ParseDateHandler(opts Options) func(ctx context.Context, req *mcp.CallToolRequest, input ParseDateInput) (*mcp.CallToolResult, ParseDateOutput, error) {
	opts = opts.withDefaults()
	return func(ctx context.Context, req *mcp.CallToolRequest, input ParseDateInput) (*mcp.CallToolResult, ParseDateOutput, error) {
		layouts, err := layoutsOr(input.Formats, opts.Formats)
		if err != nil {
			return nil, ParseDateOutput{}, err
		}

		d, l, err := dateformat.Match(input.Text, layouts, opts.today())
		if err != nil {
			out := ParseDateOutput{Reason: "no format matched"}
			if errors.Is(err, dateformat.ErrInvalidDate) {
				out.Reason = "not a calendar date"
			}
			opts.Logger.Debug("parse_date rejected", zap.String("text", input.Text), zap.Error(err))
			return nil, out, nil
		}

		return nil, ParseDateOutput{
			Valid:         true,
			Date:          d.String(),
			Display:       opts.Display.Format(d),
			MatchedFormat: l.String(),
		}, nil
	}
}
