package balancesheet

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Cell accumulates the flows of a token during a year.
//
// Out is kept as a non positive accumulator, so In+Out is the net flow.
type Cell struct {
	In  Amount
	Out Amount
}

// Flow returns the net flow of the cell.
func (c Cell) Flow() Amount { return c.In.Add(c.Out) }

// Ledger accumulates entries by token then by year.
//
// A Ledger lives for a single parse of an export: it is filled by Accumulate
// and then read by NewReport.
type Ledger struct {
	tokens map[string]map[int]*Cell
	years  []int // sorted, no duplicates
	rows   int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{tokens: make(map[string]map[int]*Cell)}
}

// Accumulate adds a flow of token during year.
//
// An incoming flow adds in to the cell inflow, an outgoing one subtracts out
// from the cell outflow.
func (l *Ledger) Accumulate(token string, year int, in, out Amount, incoming bool) {
	years, ok := l.tokens[token]
	if !ok {
		years = make(map[int]*Cell)
		l.tokens[token] = years
	}
	cell, ok := years[year]
	if !ok {
		cell = &Cell{}
		years[year] = cell
	}
	if incoming {
		cell.In = cell.In.Add(in)
	} else {
		cell.Out = cell.Out.Sub(out)
	}
	if i, found := slices.BinarySearch(l.years, year); !found {
		l.years = slices.Insert(l.years, i, year)
	}
}

// Add accumulates a classified entry.
func (l *Ledger) Add(e Entry) { l.Accumulate(e.Token, e.Year, e.In, e.Out, e.Incoming) }

// Years returns the years with activity, in ascending order.
func (l *Ledger) Years() []int { return slices.Clone(l.years) }

// Tokens returns the token symbols in the ledger, in no particular order.
func (l *Ledger) Tokens() []string { return slices.Collect(maps.Keys(l.tokens)) }

// Cell returns the cell of token during year. ok is false if the token had no
// activity that year.
func (l *Ledger) Cell(token string, year int) (c Cell, ok bool) {
	cell, ok := l.tokens[token][year]
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// Rows returns the number of rows folded by Aggregate.
func (l *Ledger) Rows() int { return l.rows }

// backfill inserts a zero cell for every token and every year with activity.
func (l *Ledger) backfill() {
	for _, years := range l.tokens {
		for _, year := range l.years {
			if _, ok := years[year]; !ok {
				years[year] = &Cell{}
			}
		}
	}
}

// Aggregate classifies rows one by one and folds them into a new Ledger.
//
// It stops at the first error, reporting the 1-based row number.
func Aggregate(c *Classifier, rows iter.Seq2[Row, error]) (*Ledger, error) {
	l := NewLedger()
	for row, err := range rows {
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", l.rows+1, err)
		}
		entries, err := c.Classify(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", l.rows+1, err)
		}
		for _, e := range entries {
			l.Add(e)
		}
		l.rows++
	}
	return l, nil
}
