// Package theory renders the restricted markdown used by theory cards
// into styled terminal text. Input is author-controlled, so unsupported
// syntax passes through literally rather than being rejected.
package theory

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	strong  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	bullet  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Render transforms a theory card in one pass: "## " lines become
// headings, "- " lines become bullets, **spans** become bold. Line
// breaks are preserved as-is.
func Render(source string) string {
	lines := strings.Split(source, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "## "):
			out[i] = heading.Render(strings.TrimPrefix(line, "## "))
		case strings.HasPrefix(line, "- "):
			out[i] = bullet.Render("  • ") + emphasize(strings.TrimPrefix(line, "- "))
		default:
			out[i] = emphasize(line)
		}
	}
	return strings.Join(out, "\n")
}

// emphasize bolds **spans**. Unbalanced markers are left untouched.
func emphasize(line string) string {
	parts := strings.Split(line, "**")
	if len(parts)%2 == 0 {
		return line
	}
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(strong.Render(part))
		} else {
			b.WriteString(part)
		}
	}
	return b.String()
}
