// Package diagnostic renders messages pinned to a source position, with the
// offending line and an underline, in the style of compiler errors.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gutterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	severityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Diagnostic is one message about a position in a source file. Line and
// Column are 1-based; a Line of 0 means the position is unknown.
type Diagnostic struct {
	File    string
	Line    int
	Column  int
	Length  int
	Message string
	Help    string
}

// Render formats d against the full text of the file it refers to:
//
//	error: Expected Name, found <EOF>
//	--> query.graphql:1:5
//	1 | { a(
//	  |     ^
//	  = help: ...
func (d Diagnostic) Render(source string) string {
	var b strings.Builder
	b.WriteString(severityStyle.Render("error"))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteByte('\n')

	if d.Line > 0 {
		b.WriteString(RenderLocation(d.File, d.Line, d.Column))
		b.WriteByte('\n')
		if line, ok := sourceLine(source, d.Line); ok {
			b.WriteString(RenderSnippet(line, d.Line, d.Column, d.Length, ""))
			b.WriteByte('\n')
		}
	}
	if d.Help != "" {
		b.WriteString("  = ")
		b.WriteString(helpStyle.Render("help"))
		b.WriteString(": ")
		b.WriteString(d.Help)
		b.WriteByte('\n')
	}
	return b.String()
}

func sourceLine(source string, lineNum int) (string, bool) {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[lineNum-1], "\r"), true
}

// RenderSnippet renders a source line with its line number and an underline
// starting at column:
//
//	3 | query { user }
//	  |         ^^^^ message
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	length = max(length, 1)
	column = max(column, 1)

	numStr := strconv.Itoa(lineNum)
	pipe := gutterStyle.Render("|")
	emptyGutter := strings.Repeat(" ", len(numStr))

	codeLine := gutterStyle.Render(numStr) + " " + pipe + " " + source

	underLine := emptyGutter + " " + pipe + " " + strings.Repeat(" ", column-1) +
		caretStyle.Render(strings.Repeat("^", length))
	if message != "" {
		underLine += " " + caretStyle.Render(message)
	}

	return codeLine + "\n" + underLine
}

// RenderLocation renders a header like "--> file.graphql:3:9".
func RenderLocation(filename string, line int, column int) string {
	return gutterStyle.Render("-->") + " " + filename + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
}
