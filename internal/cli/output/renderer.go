// Package output renders query results for the terminal and for scripts.
//
// Text mode is the plain LTSV-style output and is always the default.
// The json, yaml and table modes are alternative renderings of the same
// results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeText  Mode = "text"
	ModeJSON  Mode = "json"
	ModeYAML  Mode = "yaml"
	ModeTable Mode = "table"
)

// Modes lists every supported mode, for flag completion and validation.
var Modes = []Mode{ModeText, ModeJSON, ModeYAML, ModeTable}

// ParseMode converts a format name into a Mode. The empty string means text.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeText, nil
	}
	m := Mode(strings.ToLower(s))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of: %s)", s, modeList())
}

func modeList() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// Renderer writes results to an output stream and diagnostics to an error stream.
type Renderer struct {
	w      io.Writer
	errW   io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. Colour is used for diagnostics only when
// errW is a terminal and noColor is false.
func NewRenderer(w, errW io.Writer, mode Mode, noColor bool) *Renderer {
	return NewRendererWithTTY(w, errW, isTerminal(errW) && !noColor, mode)
}

// NewRendererWithTTY creates a renderer with explicit colour support, for tests.
func NewRendererWithTTY(w, errW io.Writer, color bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeText
	}
	return &Renderer{
		w:      w,
		errW:   errW,
		mode:   mode,
		styles: NewStyles(errW, color),
	}
}

// Mode returns the renderer's output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Error writes a one-line diagnostic for err to the error stream.
func (r *Renderer) Error(err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	_, _ = fmt.Fprintf(r.errW, "%s %s\n", r.styles.ErrorPrefix.Render("Error:"), msg)
}

// Labels renders the result of a list query.
func (r *Renderer) Labels(labels []string) error {
	switch r.mode {
	case ModeJSON:
		return writeJSON(r.w, nonNil(labels))
	case ModeYAML:
		return writeYAML(r.w, labels)
	case ModeTable:
		rows := make([]table.Row, len(labels))
		for i, l := range labels {
			rows[i] = table.Row{l}
		}
		r.renderTable(table.Row{"label"}, rows)
		return nil
	default:
		return writeLines(r.w, labels)
	}
}

// Lines renders the result of an order-by query.
func (r *Renderer) Lines(lines []string) error {
	switch r.mode {
	case ModeJSON:
		return writeJSON(r.w, nonNil(lines))
	case ModeYAML:
		return writeYAML(r.w, lines)
	case ModeTable:
		rows := make([]table.Row, len(lines))
		for i, l := range lines {
			rows[i] = table.Row{l}
		}
		r.renderTable(table.Row{"line"}, rows)
		return nil
	default:
		return writeLines(r.w, lines)
	}
}

func (r *Renderer) renderTable(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
