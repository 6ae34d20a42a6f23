package mcptools

// ParseDateInput is the input schema for the parse_date MCP tool.
type ParseDateInput struct {
	Text    string   `json:"text" jsonschema-description:"Text to parse as a date"`
	Formats []string `json:"formats,omitempty" jsonschema-description:"Patterns to try in order, such as DD-MM-YYYY; defaults to the configured formats"`
}

// ParseDateOutput is the output schema for the parse_date MCP tool.
type ParseDateOutput struct {
	Valid         bool   `json:"valid"`
	Date          string `json:"date,omitempty"`
	Display       string `json:"display,omitempty"`
	MatchedFormat string `json:"matched_format,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// MonthGridInput is the input schema for the month_grid MCP tool.
type MonthGridInput struct {
	Month    string `json:"month,omitempty" jsonschema-description:"Any date in the month to show, in a configured format; defaults to today"`
	Selected string `json:"selected,omitempty" jsonschema-description:"Date to mark as selected, in a configured format"`
}

// MonthGridOutput is the output schema for the month_grid MCP tool.
type MonthGridOutput struct {
	Label    string       `json:"label"`
	Month    string       `json:"month"`
	Weekdays []string     `json:"weekdays"`
	Selected string       `json:"selected,omitempty"`
	Cells    []CellResult `json:"cells"`
}

// CellResult is one day of a month_grid result.
type CellResult struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	InMonth  bool   `json:"in_month"`
	Selected bool   `json:"selected,omitempty"`
	Today    bool   `json:"today,omitempty"`
}

// FormatDateInput is the input schema for the format_date MCP tool.
type FormatDateInput struct {
	Date   string `json:"date" jsonschema-description:"ISO date (YYYY-MM-DD)"`
	Format string `json:"format,omitempty" jsonschema-description:"Pattern to format with; defaults to the display format"`
}

// FormatDateOutput is the output schema for the format_date MCP tool.
type FormatDateOutput struct {
	Text   string `json:"text"`
	Format string `json:"format"`
}
