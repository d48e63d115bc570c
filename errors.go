package balancesheet

import "errors"

// Errors returned by the balance sheet engine. They are always wrapped with
// context, use errors.Is to test for them.
var (
	ErrInvalidNumberFormat  = errors.New("invalid number format")
	ErrMalformedTimestamp   = errors.New("malformed timestamp")
	ErrMissingColumn        = errors.New("missing column")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrHeaderMismatch       = errors.New("report headers do not match")
	ErrNoInputFiles         = errors.New("no input files")
)
