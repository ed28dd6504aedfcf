package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID    string          `db:"account_id"`
	Kind         string          `db:"kind"`
	OwnerID      string          `db:"owner_id"`
	Balance      decimal.Decimal `db:"balance"`
	LastModified time.Time       `db:"last_modified"` // DATE
	IsActive     bool            `db:"is_active"`
	AuditFields
}

// AccountHistory is a row of account_histories. One row per account and month.
type AccountHistory struct {
	AccountHistoryID string          `db:"account_history_id"`
	AccountID        string          `db:"account_id"`
	Period           time.Time       `db:"period"`
	Balance          decimal.Decimal `db:"balance"`
	CreatedAt        time.Time       `db:"created_at"`
}

// CashRegister is the single row of cash_register.
type CashRegister struct {
	CashRegisterID string          `db:"cash_register_id"`
	Amount         decimal.Decimal `db:"amount"`
	IsActive       bool            `db:"is_active"`
	LastUpdatedAt  time.Time       `db:"last_updated_at"`
	LastUpdatedBy  *string         `db:"last_updated_by"` // NULL until the first update
}
