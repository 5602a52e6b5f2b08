package ptree

import (
	"sort"
	"strconv"
	"strings"
)

// Glyphs is the set of strings a Style draws the tree with.
// Fork, Last and Root should have the same display width as Pipe and Space,
// otherwise continuation rows drift from the rows they continue.
type Glyphs struct {
	Root      string // marker on the root row
	Fork      string // marker on a node that has later siblings
	Last      string // marker on the last sibling
	Pipe      string // continuation under a node that has later siblings
	Space     string // continuation under a last sibling
	Arrow     string // separates a subscription from its type annotation
	Separator string // separates a leaf's subscription from its value
}

// BranchInfo describes a branch row to Style.Branch.
type BranchInfo struct {
	Type      string // runtime type name
	Len       int    // number of children
	Annotated bool   // annotations were requested
	Truncated bool   // children were dropped by the depth limit
}

// LeafInfo describes a leaf row to Style.Leaf.
type LeafInfo struct {
	Display   string // display form, tabs already expanded
	Recursion bool   // Display is a recursion marker
}

// Style controls how a tree is drawn. Additional styles are added by
// implementing this interface.
type Style interface {
	// Glyphs returns the connector glyphs. It is called once per render.
	Glyphs() Glyphs
	// Branch returns the text that follows a branch's subscription.
	Branch(b BranchInfo) string
	// Leaf returns the text that follows a leaf's separator. Rows after the
	// first are aligned under the first by the renderer.
	Leaf(l LeafInfo) string
}

// glyphStyle is a Style that only differs from others by its glyphs.
type glyphStyle struct {
	glyphs Glyphs
}

// NewStyle returns a Style drawing with g and the default branch and leaf
// formatting.
func NewStyle(g Glyphs) Style {
	return glyphStyle{glyphs: g}
}

func (s glyphStyle) Glyphs() Glyphs { return s.glyphs }

func (s glyphStyle) Branch(b BranchInfo) string {
	return FormatBranch(s.glyphs, b)
}

func (s glyphStyle) Leaf(l LeafInfo) string { return l.Display }

// FormatBranch is the default branch formatting: " [items=N]" or " [empty]",
// preceded by the arrow and type name when annotated and followed by
// " [...]" when truncated.
func FormatBranch(g Glyphs, b BranchInfo) string {
	var sb strings.Builder
	if b.Annotated {
		sb.WriteString(" ")
		sb.WriteString(g.Arrow)
		sb.WriteString(" ")
		sb.WriteString(b.Type)
	}
	if b.Len == 0 {
		sb.WriteString(" [empty]")
	} else {
		sb.WriteString(" [items=")
		sb.WriteString(strconv.Itoa(b.Len))
		sb.WriteString("]")
	}
	if b.Truncated {
		sb.WriteString(" [...]")
	}
	return sb.String()
}

// UnicodeGlyphs are box-drawing connectors.
var UnicodeGlyphs = Glyphs{
	Root:      "└─ ",
	Fork:      "├─ ",
	Last:      "└─ ",
	Pipe:      "│  ",
	Space:     "   ",
	Arrow:     "→",
	Separator: ": ",
}

// ASCIIGlyphs are 7-bit connectors, safe for any terminal or log file.
var ASCIIGlyphs = Glyphs{
	Root:      "`- ",
	Fork:      "|- ",
	Last:      "`- ",
	Pipe:      "|  ",
	Space:     "   ",
	Arrow:     "->",
	Separator: ": ",
}

// Unicode returns the default style.
func Unicode() Style { return NewStyle(UnicodeGlyphs) }

// ASCII returns the ASCII-only style.
func ASCII() Style { return NewStyle(ASCIIGlyphs) }

var builtinStyles = map[string]func() Style{
	"unicode": Unicode,
	"ascii":   ASCII,
}

// StyleByName returns a built-in style. The second result is false for
// unknown names.
func StyleByName(name string) (Style, bool) {
	f, ok := builtinStyles[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return f(), true
}

// StyleNames returns the names of the built-in styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(builtinStyles))
	for name := range builtinStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
