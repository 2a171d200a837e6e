package api

import (
	"fmt"
	"regexp"
)

var walletAddressRegexp = regexp.MustCompile(`^[A-Za-z0-9]{26,35}$`)

// ValidateWalletAddress checks the wallet is 26 to 35 alphanumeric characters.
// An empty wallet matches both ErrMissingParameter and ErrInvalidInput.
func ValidateWalletAddress(wallet string) error {
	if wallet == "" {
		return fmt.Errorf("wallet address: %w: %w", ErrMissingParameter, ErrInvalidInput)
	}
	if !walletAddressRegexp.MatchString(wallet) {
		return fmt.Errorf("wallet address %q: %w", wallet, ErrInvalidInput)
	}
	return nil
}
