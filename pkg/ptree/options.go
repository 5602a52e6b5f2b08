package ptree

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultRootLabel is the subscription shown on the root row.
const DefaultRootLabel = "."

// DefaultTabWidth is the tab stop interval used when expanding tabs.
const DefaultTabWidth = 8

var (
	// ErrInvalidDepth is returned for a depth limit that is not a positive
	// integer.
	ErrInvalidDepth = errors.New("invalid depth")
	// ErrInvalidTabWidth is returned for a tab width that is not positive.
	ErrInvalidTabWidth = errors.New("invalid tab width")
)

// Option configures a render call.
type Option func(*options)

type options struct {
	style     Style
	depth     int
	depthSet  bool
	annotate  bool
	rootLabel string
	unsorted  bool
	tabWidth  int
}

// WithStyle selects the glyph style. A nil style selects Unicode.
func WithStyle(s Style) Option {
	return func(o *options) { o.style = s }
}

// WithDepth stops expansion at nesting level n; the root is level 0.
// Branches at level n still report their item count and are marked as
// truncated. n must be positive.
func WithDepth(n int) Option {
	return func(o *options) {
		o.depth = n
		o.depthSet = true
	}
}

// WithAnnotations adds the runtime type name to every branch row.
func WithAnnotations(on bool) Option {
	return func(o *options) { o.annotate = on }
}

// WithRootLabel replaces the root row's subscription.
func WithRootLabel(label string) Option {
	return func(o *options) { o.rootLabel = label }
}

// WithUnsorted keeps Container entries in the order they are returned
// instead of sorting them by key.
func WithUnsorted() Option {
	return func(o *options) { o.unsorted = true }
}

// WithTabWidth sets the tab stop interval used to expand tabs in keys and
// values. n must be positive.
func WithTabWidth(n int) Option {
	return func(o *options) { o.tabWidth = n }
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		rootLabel: DefaultRootLabel,
		tabWidth:  DefaultTabWidth,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.style == nil {
		o.style = Unicode()
	}
	if o.depthSet && o.depth <= 0 {
		return nil, errors.Wrapf(ErrInvalidDepth, "depth must be a positive integer, got %d", o.depth)
	}
	if o.tabWidth <= 0 {
		return nil, errors.Wrapf(ErrInvalidTabWidth, "tab width must be positive, got %d", o.tabWidth)
	}
	return o, nil
}

// ParseDepth parses a depth limit given as text, e.g. from a flag or an
// environment variable. Anything other than a positive integer is rejected
// with ErrInvalidDepth.
func ParseDepth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidDepth, "depth %q is not an integer", s)
	}
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidDepth, "depth must be a positive integer, got %d", n)
	}
	return n, nil
}
