package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultMarkdownWidth = 80

// markdownRenderer is a cached glamour renderer, rebuilt when the width or
// style changes.
var (
	markdownRenderer *glamour.TermRenderer
	cachedWidth      int
	cachedStyle      string
)

func rendererFor(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = defaultMarkdownWidth
	}
	if style == "" {
		style = "dark"
	}
	if markdownRenderer != nil && width == cachedWidth && style == cachedStyle {
		return markdownRenderer, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderer, cachedWidth, cachedStyle = r, width, style
	return r, nil
}

// RenderMarkdownWithStyle renders markdown using the given glamour style.
// The source is returned unchanged if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}

	r, err := rendererFor(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
