package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/corefmt/lang"
)

// diagnosticStyle holds the styles of a failure report. Styles are bound to a
// renderer for the report's writer, so colors are dropped automatically when
// the writer is not a terminal.
type diagnosticStyle struct {
	location lipgloss.Style
	message  lipgloss.Style
	source   lipgloss.Style
	caret    lipgloss.Style
}

func makeDiagnosticStyle(w io.Writer) diagnosticStyle {
	r := lipgloss.NewRenderer(w)

	return diagnosticStyle{
		location: r.NewStyle().Bold(true),
		message:  r.NewStyle().Foreground(lipgloss.Color("1")),
		source: r.NewStyle().
			Foreground(lipgloss.Color("8")).
			TabWidth(lipgloss.NoTabConversion),
		caret: r.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// writeDiagnostic reports err to w as "name:line:column: message" followed by
// the offending source line and a caret under the offending token.
func writeDiagnostic(w io.Writer, name string, src []byte, err error) {
	style := makeDiagnosticStyle(w)

	var b strings.Builder

	var le *lang.Error
	if !errors.As(err, &le) {
		b.WriteString(style.location.Render(name))
		b.WriteString(": ")
		b.WriteString(style.message.Render(err.Error()))
		b.WriteByte('\n')

		_, _ = io.WriteString(w, b.String())

		return
	}

	loc := name
	if pos := le.Position(); pos.IsValid() {
		loc += ":" + pos.String()
	}

	b.WriteString(style.location.Render(loc))
	b.WriteString(": ")
	b.WriteString(style.message.Render(le.Error()))
	b.WriteByte('\n')

	// The snippet is the source line followed by the caret line.
	lines := strings.Split(strings.TrimSuffix(le.Snippet(src), "\n"), "\n")
	if len(lines) == 2 {
		b.WriteString(style.source.Render(lines[0]))
		b.WriteByte('\n')
		b.WriteString(style.caret.Render(lines[1]))
		b.WriteByte('\n')
	}

	_, _ = io.WriteString(w, b.String())
}
