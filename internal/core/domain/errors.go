package domain

import "errors"

var (
	ErrMultipleAccounts    = errors.New("a movement may reference at most one account")
	ErrAccountRequired     = errors.New("movement type requires an account")
	ErrAccountKindMismatch = errors.New("movement type requires a different account kind")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrUnknownMovementType = errors.New("unknown movement type")
	ErrSubCentAmount       = errors.New("amount must have at most two decimal places")
	ErrAmountOutOfRange    = errors.New("amount must be less than 1000000000000 in magnitude")
)
