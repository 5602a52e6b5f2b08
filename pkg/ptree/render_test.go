package ptree

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRender(t *testing.T) {
	datadriven.RunTest(t, "testdata/render", func(t *testing.T, d *datadriven.TestData) string {
		styleName := "ascii"
		d.MaybeScanArgs(t, "style", &styleName)
		style, ok := StyleByName(styleName)
		require.True(t, ok, "unknown style %q", styleName)
		opts := []Option{WithStyle(style)}
		if d.HasArg("depth") {
			var depth int
			d.ScanArgs(t, "depth", &depth)
			opts = append(opts, WithDepth(depth))
		}
		if d.HasArg("annotate") {
			opts = append(opts, WithAnnotations(true))
		}
		if d.HasArg("root") {
			var root string
			d.ScanArgs(t, "root", &root)
			opts = append(opts, WithRootLabel(root))
		}

		switch d.Cmd {
		case "yaml":
			var v any
			require.NoError(t, yaml.Unmarshal([]byte(d.Input), &v))
			out, err := Sprint(v, opts...)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			return out + "\n"
		default:
			return fmt.Sprintf("unknown command: %s", d.Cmd)
		}
	})
}
