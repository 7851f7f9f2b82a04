package format

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"hailview/internal/filter"
)

// WriteOptions renders the active taxonomy as a table. The first nine
// options carry their digit shortcut; zero-count options render dimmed
// counts so shortcut numbering stays stable.
func WriteOptions(w io.Writer, options []filter.Option, enabled map[string]bool, useColor bool) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignRight},
	})
	tw.AppendHeader(table.Row{"Key", "Filter", "On", "Count"})

	for i, opt := range options {
		shortcut := "-"
		if i < 9 {
			shortcut = fmt.Sprintf("%d", i+1)
		}
		state := " "
		if enabled[opt.Key] {
			state = "x"
		}
		count := fmt.Sprintf("%d", opt.Count)
		if opt.Count == 0 {
			count = Colorize(useColor, AnsiDim, count)
		}
		tw.AppendRow(table.Row{shortcut, opt.Label, state, count})
	}

	_ = tw.Render()
}
