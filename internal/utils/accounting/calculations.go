package accounting

import (
	"github.com/shopspring/decimal"
)

// MovementEffect returns the signed delta a movement applies: +amount for income, -amount otherwise.
func MovementEffect(amount decimal.Decimal, isIncome bool) decimal.Decimal {
	if isIncome {
		return amount
	}
	return amount.Neg()
}

// ReversalEffect is the delta that undoes MovementEffect(amount, isIncome).
func ReversalEffect(amount decimal.Decimal, isIncome bool) decimal.Decimal {
	return MovementEffect(amount, isIncome).Neg()
}
