package views

import (
	"strings"

	"orbiter/internal/tui/common"
)

// RenderMainView stacks the header, the page or drawer, the optional help
// and the status bar. The body is padded or cut to its allotted height so
// the status bar stays on the last row.
func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	for _, line := range m.HeaderLines() {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(fitHeight(m.Body(), m.BodyHeight()))
	sb.WriteString("\n")

	if m.ShowHelp() {
		sb.WriteString(m.HelpView())
		sb.WriteString("\n")
	}
	sb.WriteString(m.StatusView())

	return sb.String()
}

func fitHeight(body string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(body, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
