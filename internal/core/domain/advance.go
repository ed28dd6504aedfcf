package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance records money handed to a member ahead of settlement. It is derived from an ADVANCE movement.
type Advance struct {
	AdvanceID       string          `json:"advanceID"`
	MovementID      string          `json:"movementID"`
	MovementKind    MovementKind    `json:"movementKind"`
	MemberAccountID string          `json:"memberAccountID"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// AdvanceFilter narrows advance listings.
type AdvanceFilter struct {
	MemberAccountID string
	From            *time.Time
	To              *time.Time
}
