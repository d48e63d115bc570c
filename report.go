package balancesheet

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Header labels of a report.
const (
	HeaderToken   = "Token"
	HeaderBalance = "Balance"
	suffixIn      = " In"
	suffixOut     = " Out"
	suffixFlow    = " Flow"
)

// Column holds the three report columns of a token for one year.
type Column struct {
	In   Amount
	Out  Amount
	Flow Amount
}

// Add sums two columns, field by field.
func (c Column) Add(d Column) Column {
	return Column{In: c.In.Add(d.In), Out: c.Out.Add(d.Out), Flow: c.Flow.Add(d.Flow)}
}

// Line is the report line of a token.
type Line struct {
	Token   string
	Columns []Column // one per report year
	Balance Amount
}

// add sums m into l, column by column. Both lines must have the same years.
func (l Line) add(m Line) Line {
	sum := Line{Token: l.Token, Columns: make([]Column, len(l.Columns)), Balance: l.Balance.Add(m.Balance)}
	for i := range l.Columns {
		sum.Columns[i] = l.Columns[i].Add(m.Columns[i])
	}
	return sum
}

// Report is the balance sheet of a wallet: a line per token, with a column
// group per year.
type Report struct {
	years []int
	lines []Line
}

// NewReport builds the report of a ledger.
//
// Every token gets a column for every year with activity in the ledger, zero
// if the token did not move that year. Lines are sorted by token symbol,
// ignoring case.
func NewReport(l *Ledger) *Report {
	l.backfill()
	r := &Report{years: l.Years()}
	for token, years := range l.tokens {
		line := Line{Token: token, Columns: make([]Column, 0, len(r.years))}
		for _, year := range r.years {
			cell := years[year]
			flow := cell.Flow()
			line.Columns = append(line.Columns, Column{In: cell.In, Out: cell.Out, Flow: flow})
			line.Balance = line.Balance.Add(flow)
		}
		r.lines = append(r.lines, line)
	}
	sortLines(r.lines)
	return r
}

// sortLines sorts lines by case folded token, then by token to keep the order
// stable between symbols differing only by case.
func sortLines(lines []Line) {
	fold := cases.Fold()
	slices.SortFunc(lines, func(a, b Line) int {
		if c := strings.Compare(fold.String(a.Token), fold.String(b.Token)); c != 0 {
			return c
		}
		return strings.Compare(a.Token, b.Token)
	})
}

// Years returns the years of the report, in ascending order.
func (r *Report) Years() []int { return slices.Clone(r.years) }

// Lines returns the report lines, sorted by token.
func (r *Report) Lines() []Line { return slices.Clone(r.lines) }

// Line returns the line of token.
func (r *Report) Line(token string) (Line, bool) {
	i := slices.IndexFunc(r.lines, func(l Line) bool { return l.Token == token })
	if i < 0 {
		return Line{}, false
	}
	return r.lines[i], true
}

// Header returns the column labels of the report.
func (r *Report) Header() []string {
	header := []string{HeaderToken}
	for _, year := range r.years {
		y := strconv.Itoa(year)
		header = append(header, y+suffixIn, y+suffixOut, y+suffixFlow)
	}
	return append(header, HeaderBalance)
}

// Records returns the report lines formatted as strings, in Header order.
func (r *Report) Records() [][]string {
	records := make([][]string, 0, len(r.lines))
	for _, l := range r.lines {
		rec := make([]string, 0, 2+3*len(l.Columns))
		rec = append(rec, l.Token)
		for _, c := range l.Columns {
			rec = append(rec, c.In.String(), c.Out.String(), c.Flow.String())
		}
		records = append(records, append(rec, l.Balance.String()))
	}
	return records
}
