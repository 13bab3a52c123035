package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for diagnostics.
type Styles struct {
	ErrorPrefix lipgloss.Style
}

// NewStyles creates styles bound to w. Without colour, or when NO_COLOR is
// set, every style renders as plain text.
func NewStyles(w io.Writer, color bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !color || termenv.EnvNoColor() {
		lr.SetColorProfile(termenv.Ascii)
	} else {
		lr.SetColorProfile(termenv.ANSI)
	}
	return &Styles{
		ErrorPrefix: lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}
