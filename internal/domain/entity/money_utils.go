package entity

import (
	"fmt"

	errs "github.com/lendmark/demo-credit/internal/domain/error"
)

// Monetary values are carried as int64 minor units (kobo) end to end;
// formatting to a two-decimal string happens only at presentation edges
// (narrations, API responses).

// MaxAmount is the largest single-operation amount accepted by the ledger,
// mirroring the DECIMAL(15,2) column capacity.
const MaxAmount int64 = 9_999_999_999_999

// ValidateAmount checks that a ledger amount is positive and within the
// storable range.
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	if amount > MaxAmount {
		return fmt.Errorf("%w: amount exceeds maximum of %d", errs.ErrInvalidAmount, MaxAmount)
	}
	return nil
}

// FormatAmount converts kobo to a decimal string, e.g. 1015 -> "10.15".
func FormatAmount(amount int64) string {
	isNegative := amount < 0
	if isNegative {
		amount = -amount
	}

	amountStr := fmt.Sprintf("%d", amount)
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}
