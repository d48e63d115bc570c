package balancesheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Column names used by the explorer exports.
const (
	ColFrom        = "From"
	ColTo          = "To"
	ColTxTo        = "TxTo"
	ColDateTime    = "DateTime (UTC)"
	ColStatus      = "Status"
	ColValueIn     = "Value_IN(ETH)"
	ColValueOut    = "Value_OUT(ETH)"
	ColTxnFee      = "TxnFee(ETH)"
	ColMethod      = "Method"
	ColQuantity    = "Quantity"
	ColTokenSymbol = "TokenSymbol"
	ColTokenValue  = "TokenValue"
)

// Symbols of the native coin and of its wrapped token.
const (
	NativeSymbol  = "ETH"
	WrappedSymbol = "WETH"
)

// DepositMethod is the method name of a wrap on the wrapped native contract.
const DepositMethod = "Deposit"

// WrappedNative is the WETH9 contract on Ethereum mainnet.
var WrappedNative = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")

// Row is a single record of an export, indexed by column name.
type Row map[string]string

// field returns the value of col, or an error if the row has no such column.
func (r Row) field(col string) (string, error) {
	v, ok := r[col]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingColumn, col)
	}
	return v, nil
}

// amount parses the value of col as an Amount.
func (r Row) amount(col string) (Amount, error) {
	v, err := r.field(col)
	if err != nil {
		return Amount{}, err
	}
	a, err := ParseAmount(v)
	if err != nil {
		return Amount{}, fmt.Errorf("column %q: %w", col, err)
	}
	return a, nil
}

// Year returns the year of the row timestamp: its first four characters.
func (r Row) Year() (int, error) {
	ts, err := r.field(ColDateTime)
	if err != nil {
		return 0, err
	}
	if len(ts) < 4 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
	}
	for _, c := range ts[:4] {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, ts)
		}
	}
	year, _ := strconv.Atoi(ts[:4])
	return year, nil
}

// Entry is the contribution of a row to the ledger.
//
// In and Out are both positive amounts, Incoming selects which one applies.
type Entry struct {
	Token    string
	Year     int
	In       Amount
	Out      Amount
	Incoming bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithSymbol sets the token symbol of a TokenSpecific export.
func WithSymbol(symbol string) Option {
	return func(c *Classifier) { c.symbol = strings.ToUpper(strings.TrimSpace(symbol)) }
}

// WithWrappedNative overrides the wrapped native contract used to detect wraps.
func WithWrappedNative(contract common.Address) Option {
	return func(c *Classifier) { c.wrapped = contract }
}

// Classifier turns rows of an export into ledger entries for one wallet.
type Classifier struct {
	mode    Mode
	wallet  Wallet
	symbol  string
	wrapped common.Address

	// values computes token, in and out for the mode.
	values func(Row) (token string, in, out Amount, err error)
}

// NewClassifier creates a Classifier for rows of an export in mode, seen from wallet.
func NewClassifier(mode Mode, wallet Wallet, opts ...Option) (*Classifier, error) {
	c := &Classifier{mode: mode, wallet: wallet, wrapped: WrappedNative}
	for _, opt := range opts {
		opt(c)
	}
	switch mode {
	case Native:
		c.values = c.native
	case NativeInternal:
		c.values = c.nativeInternal
	case TokenSpecific:
		if c.symbol == "" {
			return nil, errors.New("a token symbol is required for a token_specific export")
		}
		c.values = c.tokenSpecific
	case TokenGeneric:
		c.values = c.tokenGeneric
	default:
		return nil, fmt.Errorf("unsupported mode %v", mode)
	}
	return c, nil
}

// Mode returns the export mode handled by c.
func (c *Classifier) Mode() Mode { return c.mode }

// Symbol returns the token symbol of a TokenSpecific classifier.
func (c *Classifier) Symbol() string { return c.symbol }

// Suffix returns the output file suffix of reports classified by c.
func (c *Classifier) Suffix() string { return c.mode.Suffix(c.symbol) }

// Classify returns the entries contributed by row.
//
// Most rows produce a single entry. A wrap of the native coin produces a
// second, incoming, entry for the wrapped token.
func (c *Classifier) Classify(row Row) ([]Entry, error) {
	from, err := row.field(ColFrom)
	if err != nil {
		return nil, err
	}
	year, err := row.Year()
	if err != nil {
		return nil, err
	}
	token, in, out, err := c.values(row)
	if err != nil {
		return nil, err
	}
	entries := []Entry{{
		Token:    token,
		Year:     year,
		In:       in,
		Out:      out,
		Incoming: !c.wallet.Is(from),
	}}

	if c.mode == Native {
		wrap, ok, err := c.wrap(row, year)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, wrap)
		}
	}
	return entries, nil
}

// native handles the normal transactions export. A failed transaction only
// costs its fee.
func (c *Classifier) native(row Row) (string, Amount, Amount, error) {
	fee, err := row.amount(ColTxnFee)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	status, err := row.field(ColStatus)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	if status != "" {
		return NativeSymbol, Amount{}, fee, nil
	}
	in, err := row.amount(ColValueIn)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	out, err := row.amount(ColValueOut)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	return NativeSymbol, in, out.Add(fee), nil
}

// nativeInternal handles the internal transactions export, where status "0"
// means success and there is no fee.
func (c *Classifier) nativeInternal(row Row) (string, Amount, Amount, error) {
	status, err := row.field(ColStatus)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	var in Amount
	if status == "0" {
		if in, err = row.amount(ColValueIn); err != nil {
			return "", Amount{}, Amount{}, err
		}
	}
	out, err := row.amount(ColValueOut)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	return NativeSymbol, in, out, nil
}

func (c *Classifier) tokenSpecific(row Row) (string, Amount, Amount, error) {
	q, err := row.amount(ColQuantity)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	return c.symbol, q, q, nil
}

func (c *Classifier) tokenGeneric(row Row) (string, Amount, Amount, error) {
	symbol, err := row.field(ColTokenSymbol)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	v, err := row.amount(ColTokenValue)
	if err != nil {
		return "", Amount{}, Amount{}, err
	}
	return symbol, v, v, nil
}

// wrap detects a deposit on the wrapped native contract. The explorer does not
// list it as a token transfer, so it is credited here.
func (c *Classifier) wrap(row Row, year int) (Entry, bool, error) {
	to, err := row.field(ColTo)
	if err != nil {
		return Entry{}, false, err
	}
	method, err := row.field(ColMethod)
	if err != nil {
		return Entry{}, false, err
	}
	if !strings.EqualFold(to, c.wrapped.Hex()) || method != DepositMethod {
		return Entry{}, false, nil
	}
	v, err := row.amount(ColValueOut)
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Token: WrappedSymbol, Year: year, In: v, Out: v, Incoming: true}, true, nil
}
