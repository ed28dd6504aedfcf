package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a row of cash_movements or non_cash_movements.
// AccountKind and AccountID are both NULL when the movement has no account.
type Movement struct {
	MovementID     string          `db:"movement_id"`
	AccountKind    *string         `db:"account_kind"`
	AccountID      *string         `db:"account_id"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	MovementDate   time.Time       `db:"movement_date"`
	MovementType   string          `db:"movement_type"`
	IsIncome       bool            `db:"is_income"`
	CashRegisterID *string         `db:"cash_register_id"` // cash_movements only
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// Advance is a row of advances.
type Advance struct {
	AdvanceID       string          `db:"advance_id"`
	MovementID      string          `db:"movement_id"`
	MovementKind    string          `db:"movement_kind"`
	MemberAccountID string          `db:"member_account_id"`
	AdvanceDate     time.Time       `db:"advance_date"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
