package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/invkit/invkit/inv"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	notFoundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	promptStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// renderProduct renders one product for terminal output. Plain output
// reuses the library formatter verbatim; styled output bolds the field
// labels line by line.
func renderProduct(p *inv.Product) string {
	text := inv.FormatProduct(p, inv.DefaultWrapWidth)
	if noColor {
		return text
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if label, rest, ok := strings.Cut(line, ":"); ok && !strings.HasPrefix(line, " ") {
			b.WriteString(labelStyle.Render(label + ":"))
			b.WriteString(rest)
		} else {
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderNotFound renders the lookup-miss message.
func renderNotFound(msg string) string {
	if noColor {
		return msg
	}
	return notFoundStyle.Render(msg)
}

// renderCategoryLine renders one "id - name" listing line.
func renderCategoryLine(id, name string) string {
	if noColor {
		return fmt.Sprintf("%s - %s", id, name)
	}
	return fmt.Sprintf("%s - %s", idStyle.Render(id), name)
}

// renderPrompt renders the shell prompt.
func renderPrompt() string {
	if noColor {
		return "> "
	}
	return promptStyle.Render(">") + " "
}
