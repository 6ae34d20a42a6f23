package mcptools

import (
	"context"
	"time"

	"github.com/chris-regnier/datepick/internal/calendar"
	"github.com/chris-regnier/datepick/internal/dateformat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Options configures the date tools. Zero values fall back to the default
// layouts, the system clock and a no-op logger.
type Options struct {
	Display dateformat.Layout
	Formats []dateformat.Layout
	Now     func() time.Time
	Logger  *zap.Logger
}

func (o Options) withDefaults() Options {
	display, formats := dateformat.Defaults()
	if o.Display.IsZero() {
		o.Display = display
	}
	if len(o.Formats) == 0 {
		o.Formats = formats
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func (o Options) today() calendar.Date {
	return calendar.FromTime(o.Now())
}

// NewDatePickMCPServer creates an in-memory MCP server exposing the date tools.
// Returns the server and a client transport for connecting to it.
func NewDatePickMCPServer(opts Options) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(opts)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered date tools.
// Every call works on its own values, so concurrent calls share no state.
func CreateMCPServer(opts Options) *mcp.Server {
	opts = opts.withDefaults()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "datepick",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse_date",
		Description: "Strictly parse text as a calendar date using ordered date formats",
	}, ParseDateHandler(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "month_grid",
		Description: "Return the six-week calendar grid shown for a month",
	}, MonthGridHandler(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_date",
		Description: "Format an ISO date with a date pattern",
	}, FormatDateHandler(opts))

	return server
}
