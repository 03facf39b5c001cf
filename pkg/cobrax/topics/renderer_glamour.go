package topics

import (
	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth is the column glamour wraps markdown topics at
const DefaultWrapWidth = 80

// GlamourRenderer renders markdown topics for the terminal with glamour.
// Text topics pass through unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name or path; empty picks one from the terminal background
	Style string
	Width int
}

// NewGlamourRenderer creates a markdown renderer with automatic styling
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Width: DefaultWrapWidth}
}

// Render converts markdown to styled terminal output, falling back to the
// raw content if glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(r.Width)}
	if r.Style != "" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
