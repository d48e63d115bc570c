package balancesheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
)

// cmpAmount compares amounts by value.
var cmpAmount = cmp.Comparer(func(a, b Amount) bool { return a.Equal(b) })

func TestDetectMode(t *testing.T) {
	testCases := []struct {
		name   string
		header []string
		want   Mode
	}{
		{"normal transactions", []string{"Txhash", ColDateTime, ColFrom, ColTo, ColValueIn, ColValueOut, ColTxnFee, ColStatus, ColMethod}, Native},
		{"internal transactions", []string{"Txhash", ColDateTime, ColFrom, ColTxTo, ColValueIn, ColValueOut, ColStatus}, NativeInternal},
		{"single token transfers", []string{"Txhash", ColDateTime, ColFrom, ColTo, ColQuantity}, TokenSpecific},
		{"token transfers", []string{"Txhash", ColDateTime, ColFrom, ColTo, ColTokenValue, ColTokenSymbol}, TokenGeneric},
		{"unknown shape defaults to token transfers", []string{"a", "b"}, TokenGeneric},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMode(tc.header); got != tc.want {
				t.Errorf("DetectMode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestModeCheckColumns(t *testing.T) {
	err := TokenGeneric.CheckColumns([]string{ColFrom, ColDateTime, ColTokenValue})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("CheckColumns() error = %v, want %v", err, ErrMissingColumn)
	}
	if !strings.Contains(err.Error(), ColTokenSymbol) {
		t.Errorf("CheckColumns() error %q does not name %q", err, ColTokenSymbol)
	}
	if err := TokenGeneric.CheckColumns(TokenGeneric.Columns()); err != nil {
		t.Errorf("CheckColumns() with all columns failed: %v", err)
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range []Mode{Native, NativeInternal, TokenSpecific, TokenGeneric} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v, want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseMode("eth"); err == nil {
		t.Errorf("ParseMode(eth) succeeded, want an error")
	}
}

func TestModeSuffix(t *testing.T) {
	testCases := []struct {
		mode Mode
		want string
	}{
		{Native, "_eth.csv"},
		{NativeInternal, "_eth_internal.csv"},
		{TokenSpecific, "_UNI.csv"},
		{TokenGeneric, "_erc20.csv"},
	}
	for _, tc := range testCases {
		if got := tc.mode.Suffix("UNI"); got != tc.want {
			t.Errorf("%v.Suffix() = %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		mode Mode
		opts []Option
		row  Row
		want []Entry
	}{
		{
			// an outgoing transaction pays its value and its fee
			name: "native successful outgoing",
			mode: Native,
			row: nativeRow(ColFrom, string(testWallet), ColTo, otherAddress,
				ColValueIn, "1.5", ColValueOut, "0", ColTxnFee, "0.002", ColMethod, ""),
			want: []Entry{{Token: "ETH", Year: 2023, In: amt("1.5"), Out: amt("0.002"), Incoming: false}},
		},
		{
			name: "native failed transaction only costs the fee",
			mode: Native,
			row: nativeRow(ColFrom, string(testWallet), ColTo, otherAddress, ColStatus, "Error",
				ColValueIn, "1.5", ColValueOut, "3", ColTxnFee, "0.002"),
			want: []Entry{{Token: "ETH", Year: 2023, In: Amount{}, Out: amt("0.002"), Incoming: false}},
		},
		{
			name: "native incoming, sender in another case",
			mode: Native,
			row:  nativeRow(ColFrom, strings.ToUpper(otherAddress), ColValueIn, "2", ColDateTime, "2021-12-31 23:59:59"),
			want: []Entry{{Token: "ETH", Year: 2021, In: A(2), Out: Amount{}, Incoming: true}},
		},
		{
			name: "native from the wallet in lower case is outgoing",
			mode: Native,
			row:  nativeRow(ColFrom, strings.ToLower(string(testWallet)), ColValueOut, "1,000.5"),
			want: []Entry{{Token: "ETH", Year: 2023, In: Amount{}, Out: amt("1000.5"), Incoming: false}},
		},
		{
			name: "native deposit on the wrapped contract is also a WETH inflow",
			mode: Native,
			row: nativeRow(ColFrom, string(testWallet), ColTo, wethAddress, ColMethod, "Deposit",
				ColValueOut, "2.0", ColTxnFee, "0.001"),
			want: []Entry{
				{Token: "ETH", Year: 2023, In: Amount{}, Out: amt("2.001"), Incoming: false},
				{Token: "WETH", Year: 2023, In: A(2), Out: A(2), Incoming: true},
			},
		},
		{
			name: "native call to the wrapped contract other than a deposit",
			mode: Native,
			row: nativeRow(ColFrom, string(testWallet), ColTo, wethAddress, ColMethod, "Withdraw",
				ColTxnFee, "0.001"),
			want: []Entry{{Token: "ETH", Year: 2023, In: Amount{}, Out: amt("0.001"), Incoming: false}},
		},
		{
			name: "internal successful incoming",
			mode: NativeInternal,
			row:  Row{ColFrom: otherAddress, ColDateTime: "2022-02-02", ColStatus: "0", ColValueIn: "0.3", ColValueOut: "0"},
			want: []Entry{{Token: "ETH", Year: 2022, In: amt("0.3"), Out: Amount{}, Incoming: true}},
		},
		{
			name: "internal failed transfer brings nothing",
			mode: NativeInternal,
			row:  Row{ColFrom: otherAddress, ColDateTime: "2022-02-02", ColStatus: "1", ColValueIn: "0.3", ColValueOut: "0"},
			want: []Entry{{Token: "ETH", Year: 2022, In: Amount{}, Out: Amount{}, Incoming: true}},
		},
		{
			name: "token specific uses the given symbol",
			mode: TokenSpecific,
			opts: []Option{WithSymbol(" uni ")},
			row:  Row{ColFrom: string(testWallet), ColDateTime: "2020-09-17", ColQuantity: "400"},
			want: []Entry{{Token: "UNI", Year: 2020, In: A(400), Out: A(400), Incoming: false}},
		},
		{
			name: "token generic incoming",
			mode: TokenGeneric,
			row:  Row{ColFrom: otherAddress, ColDateTime: "2022-01-10 08:00:00", ColTokenSymbol: "USDC", ColTokenValue: "100.25"},
			want: []Entry{{Token: "USDC", Year: 2022, In: amt("100.25"), Out: amt("100.25"), Incoming: true}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClassifier(t, tc.mode, tc.opts...)
			got, err := c.Classify(tc.row)
			if err != nil {
				t.Fatalf("Classify() failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, cmpAmount); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyWrappedNativeOverride(t *testing.T) {
	contract := common.HexToAddress("0x4200000000000000000000000000000000000006")
	c := newTestClassifier(t, Native, WithWrappedNative(contract))
	row := nativeRow(ColFrom, string(testWallet), ColTo, strings.ToLower(contract.Hex()),
		ColMethod, "Deposit", ColValueOut, "1")

	got, err := c.Classify(row)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if len(got) != 2 || got[1].Token != WrappedSymbol {
		t.Errorf("Classify() = %v, want a %s entry", got, WrappedSymbol)
	}

	// the mainnet contract is no longer special
	row[ColTo] = wethAddress
	if got, _ := c.Classify(row); len(got) != 1 {
		t.Errorf("Classify() = %v, want a single entry", got)
	}
}

func TestClassifyErrors(t *testing.T) {
	testCases := []struct {
		name string
		mode Mode
		row  Row
		want error
	}{
		{"malformed timestamp", Native, nativeRow(ColDateTime, "05/01/2023"), ErrMalformedTimestamp},
		{"short timestamp", Native, nativeRow(ColDateTime, "202"), ErrMalformedTimestamp},
		{"signed year", Native, nativeRow(ColDateTime, "-202-01-01"), ErrMalformedTimestamp},
		{"invalid fee", Native, nativeRow(ColTxnFee, "n/a"), ErrInvalidNumberFormat},
		{"empty value", Native, nativeRow(ColValueIn, ""), ErrInvalidNumberFormat},
		{"missing from", TokenGeneric, Row{ColDateTime: "2022-01-01", ColTokenSymbol: "X", ColTokenValue: "1"}, ErrMissingColumn},
		{"missing value", TokenGeneric, Row{ColFrom: otherAddress, ColDateTime: "2022-01-01", ColTokenSymbol: "X"}, ErrMissingColumn},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClassifier(t, tc.mode)
			if _, err := c.Classify(tc.row); !errors.Is(err, tc.want) {
				t.Errorf("Classify() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewClassifierRequiresSymbol(t *testing.T) {
	if _, err := NewClassifier(TokenSpecific, testWallet); err == nil {
		t.Errorf("NewClassifier(TokenSpecific) without symbol succeeded, want an error")
	}
	if _, err := NewClassifier(TokenSpecific, testWallet, WithSymbol("   ")); err == nil {
		t.Errorf("NewClassifier(TokenSpecific) with a blank symbol succeeded, want an error")
	}
	c := newTestClassifier(t, TokenSpecific, WithSymbol("link"))
	if got, want := c.Suffix(), "_LINK.csv"; got != want {
		t.Errorf("Suffix() = %q, want %q", got, want)
	}
}
