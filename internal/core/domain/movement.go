package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind distinguishes movements that touch the cash register from those that don't.
type MovementKind string

const (
	MovementKindCash    MovementKind = "CASH"
	MovementKindNonCash MovementKind = "NON_CASH"
)

// MovementType classifies what a movement is for.
type MovementType string

const (
	MovementTypeAdvance           MovementType = "ADVANCE"
	MovementTypeWorkshopOrder     MovementType = "WORKSHOP_ORDER"
	MovementTypeFuelReimbursement MovementType = "FUEL_REIMBURSEMENT"
	MovementTypePayrollSettlement MovementType = "PAYROLL_SETTLEMENT"
	MovementTypeOther             MovementType = "OTHER"
)

// Movement is a signed posting against at most one account and, for cash movements, the register.
type Movement struct {
	MovementID     string          `json:"movementID"`
	Kind           MovementKind    `json:"kind"`
	Account        AccountRef      `json:"-"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Type           MovementType    `json:"type"`
	IsIncome       bool            `json:"isIncome"`
	CashRegisterID string          `json:"cashRegisterID,omitempty"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// IsCash reports whether the movement also moves the cash register.
func (m *Movement) IsCash() bool {
	return m.Kind == MovementKindCash
}

// MovementPolicy is the per-type rule set applied by the balance engine and the movement services.
type MovementPolicy struct {
	// RequiredAccount is the account kind the type must reference. Empty means any account or none.
	RequiredAccount AccountKind
	// AffectsAccountBalance is false for types whose account link is informational only.
	AffectsAccountBalance bool
}

var movementPolicies = map[MovementType]MovementPolicy{
	MovementTypeAdvance:           {RequiredAccount: AccountKindMember, AffectsAccountBalance: false},
	MovementTypeWorkshopOrder:     {RequiredAccount: AccountKindVehicle, AffectsAccountBalance: true},
	MovementTypeFuelReimbursement: {AffectsAccountBalance: true},
	MovementTypePayrollSettlement: {AffectsAccountBalance: true},
	MovementTypeOther:             {AffectsAccountBalance: true},
}

// MovementPolicyFor returns the policy for t. ok is false for unknown types.
func MovementPolicyFor(t MovementType) (policy MovementPolicy, ok bool) {
	policy, ok = movementPolicies[t]
	return policy, ok
}

// CheckAccount validates ref against the policy.
func (p MovementPolicy) CheckAccount(ref AccountRef) error {
	if p.RequiredAccount == "" {
		return nil
	}
	if ref.IsNone() {
		return fmt.Errorf("%w: %s", ErrAccountRequired, p.RequiredAccount)
	}
	if ref.Kind != p.RequiredAccount {
		return fmt.Errorf("%w: expected %s, got %s", ErrAccountKindMismatch, p.RequiredAccount, ref.Kind)
	}
	return nil
}

// MovementSpec is the validated, account-unresolved content of a create or update request.
type MovementSpec struct {
	Account     AccountRef
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Type        MovementType
	IsIncome    bool
}

// Validate checks the amount and the type's account rules.
func (s MovementSpec) Validate() error {
	policy, ok := MovementPolicyFor(s.Type)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMovementType, s.Type)
	}
	if !s.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if err := ValidateAmount(s.Amount); err != nil {
		return err
	}
	return policy.CheckAccount(s.Account)
}

// MovementFilter narrows movement listings.
type MovementFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
	Status    Status
	Limit     int
	// Cursor, decoded from a pagination token. Both zero means first page.
	AfterDate      time.Time
	AfterCreatedAt time.Time
}
