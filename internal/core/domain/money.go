package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount is the first magnitude a NUMERIC(14,2) column cannot store.
var MaxAmount = decimal.New(1, 12)

// ValidateAmount checks that d is storable as money: at most two fractional digits and |d| < MaxAmount.
// Sign is left to the caller.
func ValidateAmount(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(2)) {
		return ErrSubCentAmount
	}
	if d.Abs().GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%w: %s", ErrAmountOutOfRange, d.String())
	}
	return nil
}
