package balancesheet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits kept by an Amount.
const Precision = 18

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an exact token amount with 18 fractional digits.
//
// The zero value is a valid zero amount.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from an integer or a decimal, rounded to Precision.
func A[T int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value).RoundBank(Precision)}
}

// ParseAmount normalizes a numeric string as found in explorer exports.
//
// Grouping separators (",") are removed before parsing, and the value is
// rounded half to even to Precision digits.
func ParseAmount(s string) (Amount, error) {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidNumberFormat, s)
	}
	return Amount{value: d.RoundBank(Precision)}, nil
}

// MustParseAmount is like ParseAmount but panics on error. It is meant for
// constants and tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount      { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount      { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount              { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) IsNegative() bool         { return a.value.IsNegative() }
func (a Amount) IsPositive() bool         { return a.value.IsPositive() }
func (a Amount) Decimal() decimal.Decimal { return a.value }

// String returns the amount with exactly Precision fractional digits.
func (a Amount) String() string { return a.value.StringFixed(Precision) }
