package utils

import (
	"fmt"

	"github.com/holiman/uint256"
)

// AmountToString renders an amount as a decimal string for store
// records and CLI output. Nil amounts render as "0".
func AmountToString(amount *uint256.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.Dec()
}

// AmountFromString parses a decimal amount string. Empty strings parse
// as zero so absent record fields behave like zero balances.
func AmountFromString(s string) (*uint256.Int, error) {
	if s == "" {
		return uint256.NewInt(0), nil
	}
	amount, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}
