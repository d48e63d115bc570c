package balancesheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// this file contains functions to handle the CSV files: explorer exports on
// the way in, balance sheet reports both ways.

// Delimiters are the field delimiters recognized by Sniff, by order of preference.
var Delimiters = []rune{',', ';', '|', ' '}

// sniffLines is the number of lines inspected by Sniff.
const sniffLines = 20

// Sniff guesses the field delimiter of a CSV sample.
//
// The delimiter that splits every inspected line in the same number of fields,
// and in the greatest number of fields, wins. It defaults to ','.
func Sniff(sample []byte) rune {
	best, bestFields := ',', 1
	for _, delim := range Delimiters {
		r := csv.NewReader(bytes.NewReader(sample))
		r.Comma = delim
		r.FieldsPerRecord = -1
		fields := -1
		for range sniffLines {
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil || (fields >= 0 && len(rec) != fields) {
				fields = -1
				break
			}
			fields = len(rec)
		}
		if fields > bestFields {
			best, bestFields = delim, fields
		}
	}
	return best
}

// newReader returns a csv.Reader on the whole content of r, with a sniffed
// delimiter.
func newReader(r io.Reader) (*csv.Reader, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV content: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = Sniff(content)
	return cr, nil
}

// DecodeRows reads an explorer export.
//
// It returns the header and an iterator over the remaining records. The
// iterator yields an error and stops on a malformed record.
func DecodeRows(r io.Reader) (header []string, rows iter.Seq2[Row, error], err error) {
	cr, err := newReader(r)
	if err != nil {
		return nil, nil, err
	}
	header, err = cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows = func(yield func(Row, error) bool) {
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			row := make(Row, len(header))
			for i, col := range header {
				row[col] = rec[i]
			}
			if !yield(row, nil) {
				return
			}
		}
	}
	return header, rows, nil
}

// EncodeReport writes a report as CSV: its header, then one record per line.
func EncodeReport(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Header()); err != nil {
		return fmt.Errorf("cannot write report header: %w", err)
	}
	if err := cw.WriteAll(r.Records()); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}

// DecodeReport reads a report written by EncodeReport.
func DecodeReport(r io.Reader) (*Report, error) {
	cr, err := newReader(r)
	if err != nil {
		return nil, err
	}
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read report header: %w", err)
	}
	years, err := parseReportHeader(header)
	if err != nil {
		return nil, err
	}

	report := &Report{years: years}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read report line %d: %w", len(report.lines)+1, err)
		}
		line, err := parseReportRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("report line %d: %w", len(report.lines)+1, err)
		}
		report.lines = append(report.lines, line)
	}
	sortLines(report.lines)
	return report, nil
}

// parseReportHeader returns the years of a report header.
func parseReportHeader(header []string) ([]int, error) {
	n := len(header)
	if n < 2 || (n-2)%3 != 0 || header[0] != HeaderToken || header[n-1] != HeaderBalance {
		return nil, fmt.Errorf("%w: %q is not a balance sheet header", ErrMissingColumn, header)
	}
	var years []int
	for i := 1; i < n-1; i += 3 {
		label, ok := strings.CutSuffix(header[i], suffixIn)
		if !ok || header[i+1] != label+suffixOut || header[i+2] != label+suffixFlow {
			return nil, fmt.Errorf("%w: unexpected columns %q", ErrMissingColumn, header[i:i+3])
		}
		year, err := strconv.Atoi(label)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid year %q", ErrMissingColumn, label)
		}
		years = append(years, year)
	}
	return years, nil
}

// parseReportRecord parses a report record whose length matches the header.
func parseReportRecord(rec []string) (Line, error) {
	n := len(rec)
	line := Line{Token: rec[0]}
	values := make([]Amount, 0, n-1)
	for _, v := range rec[1:] {
		a, err := ParseAmount(v)
		if err != nil {
			return Line{}, fmt.Errorf("token %q: %w", line.Token, err)
		}
		values = append(values, a)
	}
	for i := 0; i+3 <= len(values)-1; i += 3 {
		line.Columns = append(line.Columns, Column{In: values[i], Out: values[i+1], Flow: values[i+2]})
	}
	line.Balance = values[len(values)-1]
	return line, nil
}
