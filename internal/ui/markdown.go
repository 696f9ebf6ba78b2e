package ui

import (
	glamour "charm.land/glamour/v2"
	"charm.land/glamour/v2/styles"
	"github.com/muesli/termenv"
)

// RenderMarkdown renders markdown text using glamour with the terminal's
// auto-detected style. Returns the original text when color is disabled or
// rendering fails, so callers can always print the result.
func RenderMarkdown(markdown string) string {
	if !ShouldUseColor() {
		return markdown
	}

	style := styles.LightStyle
	if termenv.HasDarkBackground() {
		style = styles.DarkStyle
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(WrapWidth()),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return rendered
}
