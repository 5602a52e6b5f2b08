package ptree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// visualWidth returns the display width of a single row in terminal cells,
// ignoring ANSI escape sequences.
func visualWidth(s string) int {
	return lipgloss.Width(s)
}

// splitRows splits s into rows on "\n" or "\r\n".
func splitRows(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// expandTabs replaces tabs in s with spaces up to the next multiple of
// width, counting columns from col, the column s starts at.
func expandTabs(s string, col, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// padTo returns prefix followed by enough spaces to reach col.
func padTo(prefix string, col int) string {
	n := col - visualWidth(prefix)
	if n <= 0 {
		return prefix
	}
	return prefix + strings.Repeat(" ", n)
}
