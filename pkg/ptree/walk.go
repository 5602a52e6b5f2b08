package ptree

import (
	"iter"
	"reflect"
	"strings"
)

// walker carries the state of one render call. It is never shared between
// calls.
type walker struct {
	opts    *options
	glyphs  Glyphs
	visited map[identity]struct{}
}

func newWalker(o *options) *walker {
	return &walker{
		opts:    o,
		glyphs:  o.style.Glyphs(),
		visited: make(map[identity]struct{}),
	}
}

// Lines returns the rendering of v as a lazy sequence, one string per node
// in pre-order. A node spanning several rows yields a single string with
// embedded newlines. Options are validated before the sequence is returned.
//
// The sequence may be ranged over more than once; every pass starts with a
// fresh visited set.
func Lines(v any, opts ...Option) (iter.Seq[string], error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		w := newWalker(o)
		w.walk(reflect.ValueOf(v), o.rootLabel, 0, true, "", yield)
	}, nil
}

// walk emits the row of one node, then the rows of its children. It returns
// false once yield asks to stop.
func (w *walker) walk(v reflect.Value, sub string, level int, last bool, prefix string, yield func(string) bool) bool {
	g := w.glyphs
	marker, cont := g.Fork, g.Pipe
	if last {
		marker, cont = g.Last, g.Space
	}
	if level == 0 {
		marker = g.Root
	}

	c := w.classify(v, level)
	if !yield(w.compose(prefix, marker, cont, sub, c)) {
		return false
	}

	prefix += cont
	for i, ch := range c.children {
		if !w.walk(ch.value, ch.sub, level+1, i == len(c.children)-1, prefix, yield) {
			return false
		}
	}
	return true
}

// compose builds prefix + marker + subscription + body. Continuation rows of
// the subscription start under the subscription; continuation rows of a leaf
// value start under the first character after the separator.
func (w *walker) compose(prefix, marker, cont, sub string, c class) string {
	var sb strings.Builder
	head := prefix + marker
	contPrefix := prefix + cont

	sb.WriteString(head)
	col := visualWidth(head)
	for i, row := range splitRows(sub) {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(contPrefix)
			col = visualWidth(contPrefix)
		}
		row = expandTabs(row, col, w.opts.tabWidth)
		sb.WriteString(row)
		col += visualWidth(row)
	}

	if c.branch {
		sb.WriteString(w.opts.style.Branch(c.info))
		return sb.String()
	}

	sb.WriteString(w.glyphs.Separator)
	col += visualWidth(w.glyphs.Separator)

	rows := splitRows(c.leaf.Display)
	for i := range rows {
		rows[i] = expandTabs(rows[i], col, w.opts.tabWidth)
	}
	leaf := c.leaf
	leaf.Display = strings.Join(rows, "\n")

	pad := padTo(contPrefix, col)
	for i, row := range strings.Split(w.opts.style.Leaf(leaf), "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(pad)
		}
		sb.WriteString(row)
	}
	return sb.String()
}
