package balancesheet

import (
	"fmt"
	"strings"
)

// addressLength is the length of a 0x prefixed, 20 bytes hex address.
const addressLength = 42

// Wallet is the address a balance sheet focuses on.
type Wallet string

// ParseWallet checks that s is long enough to be an address.
//
// Only the length is checked: explorers export addresses in various cases and
// no checksum validation is done.
func ParseWallet(s string) (Wallet, error) {
	s = strings.TrimSpace(s)
	if len(s) < addressLength {
		return "", fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidWalletAddress, s, addressLength)
	}
	return Wallet(s), nil
}

// Is reports whether address designates this wallet, ignoring case.
func (w Wallet) Is(address string) bool {
	return strings.EqualFold(strings.TrimSpace(address), string(w))
}

func (w Wallet) String() string { return string(w) }
