package ptree

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colours the parts of a rendering.
// Colors use lipgloss format: color names, hex, or 256-color numbers.
type Theme struct {
	Name      string
	Glyph     lipgloss.Style // connectors and separators
	Branch    lipgloss.Style // item counts and annotations
	Leaf      lipgloss.Style // leaf values
	Recursion lipgloss.Style // recursion markers
}

// DefaultTheme returns a muted theme for dark terminals. Styles are bound to
// r so colour output follows the capabilities of r's writer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:      "default",
		Glyph:     r.NewStyle().Foreground(lipgloss.Color("242")), // gray
		Branch:    r.NewStyle().Foreground(lipgloss.Color("39")),  // blue
		Leaf:      r.NewStyle(),
		Recursion: r.NewStyle().Foreground(lipgloss.Color("214")).Italic(true), // orange
	}
}

// MonoTheme returns a theme with no styling.
func MonoTheme() Theme {
	return Theme{
		Name:      "mono",
		Glyph:     lipgloss.NewStyle(),
		Branch:    lipgloss.NewStyle(),
		Leaf:      lipgloss.NewStyle(),
		Recursion: lipgloss.NewStyle(),
	}
}

// Themed decorates base so its glyphs and bodies are rendered with t.
// Layout is unchanged: column maths ignores the escape sequences t adds.
func Themed(base Style, t Theme) Style {
	return themed{base: base, theme: t}
}

type themed struct {
	base  Style
	theme Theme
}

func (s themed) Glyphs() Glyphs {
	g := s.base.Glyphs()
	st := s.theme.Glyph
	return Glyphs{
		Root:      paint(st, g.Root),
		Fork:      paint(st, g.Fork),
		Last:      paint(st, g.Last),
		Pipe:      paint(st, g.Pipe),
		Space:     paint(st, g.Space),
		Arrow:     g.Arrow,
		Separator: paint(st, g.Separator),
	}
}

func (s themed) Branch(b BranchInfo) string {
	return paint(s.theme.Branch, s.base.Branch(b))
}

func (s themed) Leaf(l LeafInfo) string {
	st := s.theme.Leaf
	if l.Recursion {
		st = s.theme.Recursion
	}
	rows := strings.Split(s.base.Leaf(l), "\n")
	for i, row := range rows {
		rows[i] = paint(st, row)
	}
	return strings.Join(rows, "\n")
}

// paint renders a single row. Blank rows are left alone so padding stays
// free of escape sequences.
func paint(st lipgloss.Style, s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	return st.Render(s)
}
