package balancesheet

import (
	"errors"
	"fmt"
	"slices"
)

// Merge combines reports of the same years into a single one.
//
// Lines of the same token are summed column by column, tokens present in a
// single report are carried unchanged. Reports with different years are
// rejected with ErrHeaderMismatch.
func Merge(reports ...*Report) (*Report, error) {
	if len(reports) < 2 {
		return nil, errors.New("merge requires at least two reports")
	}
	first := reports[0]
	for i, r := range reports[1:] {
		if !slices.Equal(first.years, r.years) {
			return nil, fmt.Errorf("%w: report %d has years %v, report 1 has %v", ErrHeaderMismatch, i+2, r.years, first.years)
		}
	}

	merged := &Report{years: slices.Clone(first.years)}
	index := make(map[string]int)
	for _, r := range reports {
		for _, l := range r.lines {
			i, ok := index[l.Token]
			if !ok {
				index[l.Token] = len(merged.lines)
				merged.lines = append(merged.lines, Line{Token: l.Token, Columns: slices.Clone(l.Columns), Balance: l.Balance})
				continue
			}
			merged.lines[i] = merged.lines[i].add(l)
		}
	}
	sortLines(merged.lines)
	return merged, nil
}
