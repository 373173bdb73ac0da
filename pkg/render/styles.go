// Package render formats an aligned row stream as a two-column,
// terminal-colored side-by-side diff.
package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds every lipgloss style the renderer uses. Mirrors the
// teacher's internal/ui/pretty.Styles shape (a flat struct of named
// styles built once, switched between colored and plain variants) scoped
// down to the subset a side-by-side diff needs.
type Styles struct {
	Gutter   lipgloss.Style
	Context  lipgloss.Style
	Add      lipgloss.Style
	Remove   lipgloss.Style
	Ellipsis lipgloss.Style
	FilePath lipgloss.Style
}

// NewStyles builds a Styles, with or without color per colorEnabled.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{Gutter: plain, Context: plain, Add: plain, Remove: plain, Ellipsis: plain, FilePath: plain}
	}
	return &Styles{
		Gutter:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Context:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Add:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Remove:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Ellipsis: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		FilePath: lipgloss.NewStyle().Bold(true),
	}
}

// IsColorEnabled mirrors the teacher's pretty.IsColorEnabled: "auto" colors
// only when writing to a genuine terminal and NO_COLOR is unset, "always"
// and "never" override that check.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
