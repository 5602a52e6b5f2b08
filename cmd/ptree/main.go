// ptree renders JSON and YAML documents as tree diagrams.
//
// Usage:
//
//	ptree config.yaml
//	kubectl get pod web -o json | ptree --depth 3
//	ptree --style ascii --annotate a.json b.yaml
//
// Input format is sniffed per source: JSON when the first non-blank byte
// is '{' or '[', YAML otherwise. Every document of a YAML stream is drawn
// as its own tree.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/dkoosis/ptree/internal/config"
	"github.com/dkoosis/ptree/internal/input"
	"github.com/dkoosis/ptree/internal/pager"
	"github.com/dkoosis/ptree/pkg/ptree"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand(stdin)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "ptree: %v\n", err)
		return 2
	}
	return 0
}

// renderFlags are the root command's flag values.
type renderFlags struct {
	style     string
	depth     string
	annotate  bool
	noColor   bool
	usePager  bool
	rootLabel string
	debug     bool
}

func newRootCommand(stdin io.Reader) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:           "ptree [flags] [file...]",
		Short:         "Render JSON and YAML documents as trees",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderFiles(cmd, stdin, args, cliFlags(cmd, f), f.usePager)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.style, "style", "s", config.DefaultStyle, "glyph style: ascii, unicode")
	flags.StringVarP(&f.depth, "depth", "d", "", "maximum depth to draw (positive integer)")
	flags.BoolVarP(&f.annotate, "annotate", "a", false, "show the type of every branch")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colour output")
	flags.BoolVarP(&f.usePager, "pager", "p", false, "show the output in a scrollable pager")
	flags.StringVar(&f.rootLabel, "root", "", "label for the root node (default: file name)")
	flags.BoolVar(&f.debug, "debug", false, "log configuration and input handling to stderr")

	cmd.AddCommand(stylesCommand(), versionCommand())
	return cmd
}

// cliFlags records which flags the user set so that config resolution can
// fall through to the environment and the config file for the rest.
func cliFlags(cmd *cobra.Command, f renderFlags) config.CliFlags {
	changed := cmd.Flags().Changed
	return config.CliFlags{
		Style:        f.style,
		Depth:        f.depth,
		Annotate:     f.annotate,
		NoColor:      f.noColor,
		Debug:        f.debug,
		RootLabel:    f.rootLabel,
		StyleSet:     changed("style"),
		DepthSet:     changed("depth"),
		AnnotateSet:  changed("annotate"),
		NoColorSet:   changed("no-color"),
		DebugSet:     changed("debug"),
		RootLabelSet: changed("root"),
	}
}

// source is one named input.
type source struct {
	name  string
	label string
	data  []byte
}

func renderFiles(cmd *cobra.Command, stdin io.Reader, args []string, cli config.CliFlags, usePager bool) error {
	resolved, err := config.Resolve(cli)
	if err != nil {
		return err
	}
	stderr := cmd.ErrOrStderr()
	stdout := cmd.OutOrStdout()
	log := newLogger(resolved.Debug, stderr)
	defer func() { _ = log.Sync() }()

	log.Debug("resolved config",
		zap.String("style", resolved.Style), zap.String("style_source", string(resolved.StyleSource)),
		zap.Int("depth", resolved.Depth), zap.String("depth_source", string(resolved.DepthSource)),
		zap.Bool("annotate", resolved.Annotate), zap.Bool("no_color", resolved.NoColor),
		zap.String("config_path", resolved.ConfigPath))

	sources, err := readSources(stdin, args)
	if err != nil {
		return err
	}

	colour := !resolved.NoColor && isTTYWriter(stdout)
	style, _ := ptree.StyleByName(resolved.Style)
	if colour {
		style = ptree.Themed(style, ptree.DefaultTheme(lipgloss.NewRenderer(stdout)))
	}

	var buf bytes.Buffer
	fromStdin := false
	for _, src := range sources {
		fromStdin = fromStdin || src.name == stdinName
		docs, format, err := input.Decode(src.data)
		if err != nil {
			return errors.Wrapf(err, "%s", src.name)
		}
		log.Debug("decoded input", zap.String("source", src.name),
			zap.Stringer("format", format), zap.Int("documents", len(docs)))

		opts := append(resolved.Options(), ptree.WithStyle(style))
		if resolved.RootLabel == "" {
			opts = append(opts, ptree.WithRootLabel(src.label))
		}
		for _, doc := range docs {
			if err := ptree.Fprint(&buf, doc, opts...); err != nil {
				return err
			}
		}
	}
	log.Debug("rendered", zap.Int("bytes", buf.Len()), zap.Bool("colour", colour))

	if usePager && isTTYWriter(stdout) {
		var in io.Reader = stdin
		if fromStdin {
			in = nil
		}
		return pager.Run(cmd.Context(), pagerTitle(sources), buf.String(), in, stdout)
	}
	_, err = stdout.Write(buf.Bytes())
	return errors.Wrap(err, "writing output")
}

// readSources reads every named file, or stdin when there are none.
func readSources(stdin io.Reader, args []string) ([]source, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}
	sources := make([]source, 0, len(args))
	for _, name := range args {
		if name == stdinName {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, errors.Wrap(err, "reading stdin")
			}
			sources = append(sources, source{name: name, label: ptree.DefaultRootLabel, data: data})
			continue
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		sources = append(sources, source{name: name, label: name, data: data})
	}
	return sources, nil
}

func pagerTitle(sources []source) string {
	if len(sources) == 1 {
		return sources[0].label
	}
	return fmt.Sprintf("%d inputs", len(sources))
}

// newLogger returns a no-op logger unless debug output was requested.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.DebugLevel,
	)
	return zap.New(core).Named("ptree")
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
