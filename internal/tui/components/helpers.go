package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// splitLines splits a rendered string on newlines.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// joinLines joins lines back with newlines.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// clipLines cuts every line of a rendered string to width cells, keeping
// ANSI sequences intact.
func clipLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := splitLines(s)
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return joinLines(lines)
}
