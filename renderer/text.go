package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/balancesheet"
	"github.com/mattn/go-runewidth"
)

// Text writes the report as an aligned plain text table: token symbols to the
// left, amounts to the right.
func Text(w io.Writer, r *balancesheet.Report) error {
	t := NewTable("", r)
	widths := make([]int, len(t.Header))
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	measure(t.Header)
	for _, rec := range t.Records {
		measure(rec)
	}

	rules := make([]string, len(widths))
	for i, n := range widths {
		rules[i] = strings.Repeat("-", n)
	}

	for _, row := range append([][]string{t.Header, rules}, t.Records...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == 0 {
				cells[i] = runewidth.FillRight(cell, widths[i])
			} else {
				cells[i] = runewidth.FillLeft(cell, widths[i])
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}
