package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	PINLength        = 4
	MaxEntryAmount   = "1000000000" // 1 billion USD
	MaxDetailsLength = 1024
)

// ValidatePIN checks the PIN format before any remote lookup happens:
// exactly four decimal digits.
func ValidatePIN(pin string) error {
	if len(pin) != PINLength {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}

	return nil
}

// ValidateEntryAmount checks a new entry's magnitude: positive, non-zero and
// within the sanity ceiling.
func ValidateEntryAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	max, _ := decimal.NewFromString(MaxEntryAmount)
	if amount.GreaterThan(max) {
		return fmt.Errorf("%w: exceeds %s", ErrInvalidAmount, MaxEntryAmount)
	}

	return nil
}

// ValidatePagination clamps limit/offset to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
