package balancesheet

import (
	"fmt"
	"io"
	"iter"
)

// Export is an explorer export whose header has been read and checked.
type Export struct {
	Header []string
	Mode   Mode
	rows   iter.Seq2[Row, error]
}

// DecodeExport reads the header of an export and detects its Mode.
//
// It fails with ErrMissingColumn if the header lacks a column the mode needs.
func DecodeExport(r io.Reader) (*Export, error) {
	header, rows, err := DecodeRows(r)
	if err != nil {
		return nil, err
	}
	mode := DetectMode(header)
	if err := mode.CheckColumns(header); err != nil {
		return nil, err
	}
	return &Export{Header: header, Mode: mode, rows: rows}, nil
}

// Sheet is the outcome of a balance sheet run.
type Sheet struct {
	Report *Report
	Suffix string // output file suffix, see Mode.Suffix
	Rows   int    // number of rows read
}

// BalanceSheet classifies every row of the export for wallet and builds the
// report.
//
// Rows are consumed: BalanceSheet can only be called once per Export.
func (e *Export) BalanceSheet(wallet Wallet, opts ...Option) (*Sheet, error) {
	c, err := NewClassifier(e.Mode, wallet, opts...)
	if err != nil {
		return nil, err
	}
	l, err := Aggregate(c, e.rows)
	if err != nil {
		return nil, fmt.Errorf("cannot aggregate %s export: %w", e.Mode, err)
	}
	return &Sheet{Report: NewReport(l), Suffix: c.Suffix(), Rows: l.Rows()}, nil
}
