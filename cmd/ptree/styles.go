package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/ptree/pkg/ptree"
)

var titler = cases.Title(language.English)

// styleSample is drawn under the glyph table for every style.
var styleSample = map[string]any{
	"items": []any{"first", map[string]any{"nested": true}},
	"empty": map[string]any{},
}

func stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List built-in styles and their glyphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			names := ptree.StyleNames()

			tbl := tablewriter.NewWriter(out)
			tbl.SetHeader([]string{"Style", "Root", "Fork", "Last", "Pipe", "Arrow"})
			tbl.SetAutoFormatHeaders(false)
			for _, name := range names {
				style, _ := ptree.StyleByName(name)
				g := style.Glyphs()
				tbl.Append([]string{
					titler.String(name),
					strconv.Quote(g.Root),
					strconv.Quote(g.Fork),
					strconv.Quote(g.Last),
					strconv.Quote(g.Pipe),
					g.Arrow,
				})
			}
			tbl.Render()

			for _, name := range names {
				style, _ := ptree.StyleByName(name)
				sample, err := ptree.Sprint(styleSample,
					ptree.WithStyle(style), ptree.WithRootLabel(name), ptree.WithAnnotations(true))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s:\n%s\n", titler.String(name), sample)
			}
			return nil
		},
	}
}
