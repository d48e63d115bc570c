package balancesheet

import (
	"strings"
	"testing"
)

var (
	// testWallet is written in mixed case to exercise case insensitive matching.
	testWallet = Wallet("0xAbCd" + strings.Repeat("0", 35) + "1")
	// otherAddress is any address that is not the wallet.
	otherAddress = "0x" + strings.Repeat("9", 40)
	// wethAddress is the lower case form used by explorer exports.
	wethAddress = strings.ToLower(WrappedNative.Hex())
)

// amt is a helper for test to create an amount from a literal.
func amt(s string) Amount { return MustParseAmount(s) }

// nativeRow returns a successful normal transaction row, with fields
// overridden by kv pairs.
func nativeRow(kv ...string) Row {
	r := Row{
		ColFrom:     otherAddress,
		ColTo:       string(testWallet),
		ColDateTime: "2023-05-01 10:00:00",
		ColStatus:   "",
		ColValueIn:  "0",
		ColValueOut: "0",
		ColTxnFee:   "0",
		ColMethod:   "Transfer",
	}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = kv[i+1]
	}
	return r
}

// newTestClassifier creates a classifier for testWallet or fails the test.
func newTestClassifier(t *testing.T, mode Mode, opts ...Option) *Classifier {
	t.Helper()
	c, err := NewClassifier(mode, testWallet, opts...)
	if err != nil {
		t.Fatalf("NewClassifier(%v) failed: %v", mode, err)
	}
	return c
}

// rowsOf turns a slice of rows into the iterator consumed by Aggregate.
func rowsOf(rows ...Row) func(func(Row, error) bool) {
	return func(yield func(Row, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}
