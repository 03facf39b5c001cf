// Package styles defines the visual styling for rebar3's terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are loaded from the embedded styles.yaml and
// rendered through a lipgloss renderer bound to the destination writer,
// so output that is not a terminal stays free of escape codes.
package styles

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var current Config

func init() {
	if err := Reset(); err != nil {
		// Unstyled output is still correct output
		current = Config{}
	}
}

// Reset restores the embedded styles
func Reset() error {
	return LoadStylesFromData(embeddedStyles)
}

// LoadStylesFromData replaces the active styles with the given YAML
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}
	current = config
	return nil
}

// Names returns the defined style names
func Names() []string {
	names := make([]string, 0, len(current.Styles))
	for name := range current.Styles {
		names = append(names, name)
	}
	return names
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a lipgloss renderer for w. Writers that are not
// terminals get the ASCII profile, which renders no escape codes.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	if IsTerminal(w) {
		return lipgloss.NewRenderer(w)
	}
	return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
}

// GetStyle builds the named style for r. Unknown names yield a plain style.
func GetStyle(r *lipgloss.Renderer, name string) lipgloss.Style {
	style := r.NewStyle()
	def, ok := current.Styles[name]
	if !ok {
		return style
	}

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := current.Colors[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
	}
	if color, ok := current.Colors[def.Background]; ok {
		style = style.Background(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
	}
	return style
}

// Render styles text for display on w
func Render(w io.Writer, name, text string) string {
	return GetStyle(NewRenderer(w), name).Render(text)
}
