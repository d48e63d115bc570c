package balancesheet

import (
	"fmt"
	"slices"
)

// Mode identifies the shape of an explorer export.
type Mode int

const (
	// Native is the normal transactions export: native coin transfers and fees.
	Native Mode = iota
	// NativeInternal is the internal transactions export.
	NativeInternal
	// TokenSpecific is the transfers export of a single token, whose symbol is not
	// part of the file.
	TokenSpecific
	// TokenGeneric is the ERC20 token transfers export.
	TokenGeneric
)

func (m Mode) String() string {
	switch m {
	case Native:
		return "native"
	case NativeInternal:
		return "native_internal"
	case TokenSpecific:
		return "token_specific"
	case TokenGeneric:
		return "token_generic"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "native":
		return Native, nil
	case "native_internal":
		return NativeInternal, nil
	case "token_specific":
		return TokenSpecific, nil
	case "token_generic":
		return TokenGeneric, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", s)
	}
}

// DetectMode selects the Mode of an export from its header.
//
// A TokenSpecific export does not carry the token symbol, the caller must
// provide it to the Classifier.
func DetectMode(header []string) Mode {
	has := func(col string) bool { return slices.Contains(header, col) }
	switch {
	case has(ColValueIn) && !has(ColTxTo):
		return Native
	case has(ColTxTo):
		return NativeInternal
	case has(ColQuantity):
		return TokenSpecific
	default:
		return TokenGeneric
	}
}

// Columns returns the columns a row must have to be classified in this mode.
func (m Mode) Columns() []string {
	switch m {
	case Native:
		return []string{ColFrom, ColTo, ColDateTime, ColStatus, ColValueIn, ColValueOut, ColTxnFee, ColMethod}
	case NativeInternal:
		return []string{ColFrom, ColDateTime, ColStatus, ColValueIn, ColValueOut}
	case TokenSpecific:
		return []string{ColFrom, ColDateTime, ColQuantity}
	default:
		return []string{ColFrom, ColDateTime, ColTokenSymbol, ColTokenValue}
	}
}

// CheckColumns returns an error wrapping ErrMissingColumn if header lacks a
// column required by the mode.
func (m Mode) CheckColumns(header []string) error {
	var missing []string
	for _, col := range m.Columns() {
		if !slices.Contains(header, col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s export requires %q", ErrMissingColumn, m, missing)
	}
	return nil
}

// Suffix returns the output file suffix of a report built in this mode.
// symbol is only used by TokenSpecific.
func (m Mode) Suffix(symbol string) string {
	switch m {
	case Native:
		return "_eth.csv"
	case NativeInternal:
		return "_eth_internal.csv"
	case TokenSpecific:
		return "_" + symbol + ".csv"
	default:
		return "_erc20.csv"
	}
}
