package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dkoosis/ptree/pkg/ptree"
)

// Source names where a resolved value came from.
type Source string

const (
	SourceCLI     Source = "cli"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// DefaultStyle is the style used when no source selects one.
const DefaultStyle = "unicode"

// ErrUnknownStyle is returned when a style name is not a built-in style.
var ErrUnknownStyle = errors.New("unknown style")

// Resolved holds the final configuration after applying all priority rules.
type Resolved struct {
	Style     string
	Depth     int // 0 means unlimited
	Annotate  bool
	NoColor   bool
	Debug     bool
	RootLabel string

	// Resolution metadata (for debugging)
	ConfigPath      string
	StyleSource     Source
	DepthSource     Source
	AnnotateSource  Source
	NoColorSource   Source
	RootLabelSource Source
}

// Options converts the resolved configuration into render options. The
// style is left to the caller, which knows whether colour is possible.
func (r *Resolved) Options() []ptree.Option {
	opts := []ptree.Option{ptree.WithAnnotations(r.Annotate)}
	if r.Depth > 0 {
		opts = append(opts, ptree.WithDepth(r.Depth))
	}
	if r.RootLabel != "" {
		opts = append(opts, ptree.WithRootLabel(r.RootLabel))
	}
	return opts
}

// Resolve resolves configuration from all sources with explicit priority
// order: CLI > environment > file > defaults.
func Resolve(cli CliFlags) (*Resolved, error) {
	file, path, err := LoadFile()
	if err != nil {
		return nil, err
	}
	return ResolveWith(cli, file, path)
}

// ResolveWith is Resolve with an already loaded file config.
func ResolveWith(cli CliFlags, file *FileConfig, path string) (*Resolved, error) {
	if file == nil {
		file = &FileConfig{}
	}
	r := &Resolved{
		Style:           DefaultStyle,
		ConfigPath:      path,
		StyleSource:     SourceDefault,
		DepthSource:     SourceDefault,
		AnnotateSource:  SourceDefault,
		NoColorSource:   SourceDefault,
		RootLabelSource: SourceDefault,
	}

	// Style: CLI > ENV > file > default
	switch {
	case cli.StyleSet:
		r.Style, r.StyleSource = cli.Style, SourceCLI
	case os.Getenv("PTREE_STYLE") != "":
		r.Style, r.StyleSource = os.Getenv("PTREE_STYLE"), SourceEnv
	case file.Style != "":
		r.Style, r.StyleSource = file.Style, SourceFile
	}
	r.Style = strings.ToLower(strings.TrimSpace(r.Style))
	if _, ok := ptree.StyleByName(r.Style); !ok {
		return nil, errors.Wrapf(ErrUnknownStyle, "style %q from %s (expected one of %s)",
			r.Style, r.StyleSource, strings.Join(ptree.StyleNames(), ", "))
	}

	// Depth: CLI > ENV > file > default (unlimited)
	var depthText string
	switch {
	case cli.DepthSet:
		depthText, r.DepthSource = cli.Depth, SourceCLI
	case os.Getenv("PTREE_DEPTH") != "":
		depthText, r.DepthSource = os.Getenv("PTREE_DEPTH"), SourceEnv
	case file.Depth != "":
		depthText, r.DepthSource = file.Depth, SourceFile
	}
	if r.DepthSource != SourceDefault {
		depth, err := ptree.ParseDepth(depthText)
		if err != nil {
			return nil, errors.Wrapf(err, "depth from %s", r.DepthSource)
		}
		r.Depth = depth
	}

	// Annotate: CLI > ENV > file > default
	if cli.AnnotateSet {
		r.Annotate, r.AnnotateSource = cli.Annotate, SourceCLI
	} else if b := getEnvBool("PTREE_ANNOTATE"); b != nil {
		r.Annotate, r.AnnotateSource = *b, SourceEnv
	} else if file.Annotate != nil {
		r.Annotate, r.AnnotateSource = *file.Annotate, SourceFile
	}

	// NoColor: CLI > ENV > file > default
	if cli.NoColorSet {
		r.NoColor, r.NoColorSource = cli.NoColor, SourceCLI
	} else if b := getEnvBool("PTREE_NO_COLOR"); b != nil {
		r.NoColor, r.NoColorSource = *b, SourceEnv
	} else if os.Getenv("NO_COLOR") != "" {
		// no-color.org: any non-empty value disables colour
		r.NoColor, r.NoColorSource = true, SourceEnv
	} else if file.NoColor != nil {
		r.NoColor, r.NoColorSource = *file.NoColor, SourceFile
	}

	// Debug: CLI > ENV > file > default
	if cli.DebugSet {
		r.Debug = cli.Debug
	} else if os.Getenv("PTREE_DEBUG") != "" {
		r.Debug = true
	} else if file.Debug != nil {
		r.Debug = *file.Debug
	}

	// RootLabel: CLI > file > default
	if cli.RootLabelSet {
		r.RootLabel, r.RootLabelSource = cli.RootLabel, SourceCLI
	} else if file.RootLabel != "" {
		r.RootLabel, r.RootLabelSource = file.RootLabel, SourceFile
	}

	return r, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a valid boolean.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}
