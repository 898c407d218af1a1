package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"asciirename/internal/rename"
)

// printSummary renders the run totals, as a table on a terminal and as a
// single plain line when the output is piped.
func printSummary(out io.Writer, result rename.Result) {
	if !writerIsTerminal(out) {
		fmt.Fprintf(out, "Renamed: %d, Skipped: %d, Total: %d\n",
			result.Renamed, result.Skipped, result.Total())
		return
	}

	rows := [][]string{
		{"Renamed", strconv.Itoa(result.Renamed)},
		{"Skipped", strconv.Itoa(result.Skipped)},
		{"Total", strconv.Itoa(result.Total())},
	}
	fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows))
}

func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
