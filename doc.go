// Package balancesheet turns blockchain explorer exports into a yearly
// balance sheet for a single wallet.
//
// The input is one of the CSV exports offered by Etherscan (normal
// transactions, internal transactions, ERC20 token transfers, or the token
// holder view of a single token). Each row is classified into a token, a year
// and a direction relative to the focus wallet, then folded into a [Ledger].
// The ledger produces a [Report]: one line per token with inflow, outflow and
// net flow for every year observed in the file, plus the running balance.
//
// All amounts are exact decimals with 18 fractional digits (see [Amount]);
// summing thousands of small token transfers never drifts.
//
// Reports written by this package can be read back with [DecodeReport] and
// combined with [Merge], for instance to fold the normal and internal
// transaction reports of the same wallet into a single sheet.
//
// This package serves as the foundational logic for the `balances`
// command-line tool.
package balancesheet
