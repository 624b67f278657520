// Package valueobject contains immutable value types and the pure validation rules attached to them.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/budget-control/backend/internal/domain/error"
)

// MaxAmount is the largest amount a decimal(18,2) column can hold.
var MaxAmount = decimal.RequireFromString("9999999999999999.99")

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// ValidateAmount checks, in order, that amount is positive, that it fits in
// decimal(18,2) once rounded half-up to two places, and that it has no more
// than two significant decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return domainerror.NewInvalidFieldError("amount", "Transaction amount must be greater than zero.")
	}

	if amount.Round(AmountScale).GreaterThan(MaxAmount) {
		return domainerror.NewInvalidFieldError("amount", "Transaction amount exceed the allowed limit of "+MaxAmount.StringFixed(AmountScale)+".")
	}

	if !amount.Equal(amount.Truncate(AmountScale)) {
		return domainerror.NewInvalidFieldError("amount", "Transaction amount must have at most two decimal places.")
	}

	return nil
}
