package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegister holds the cooperative's physical cash. There is exactly one.
type CashRegister struct {
	CashRegisterID string          `json:"cashRegisterID"`
	Amount         decimal.Decimal `json:"amount"`
	IsActive       bool            `json:"isActive"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}
