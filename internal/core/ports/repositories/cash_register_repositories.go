package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CashRegisterRepositoryFacade persists the singleton cash register.
type CashRegisterRepositoryFacade interface {
	// GetOrCreateCashRegister returns the register, inserting it with a zero amount if missing.
	GetOrCreateCashRegister(ctx context.Context, now time.Time) (*domain.CashRegister, error)

	// FindCashRegisterForUpdate returns the register with its row locked.
	FindCashRegisterForUpdate(ctx context.Context) (*domain.CashRegister, error)

	// AddToCashRegister adds delta to the register amount.
	AddToCashRegister(ctx context.Context, cashRegisterID string, delta decimal.Decimal, userID string, now time.Time) error

	// SetCashRegisterAmount overwrites the register amount.
	SetCashRegisterAmount(ctx context.Context, cashRegisterID string, amount decimal.Decimal, userID string, now time.Time) error

	WithTx(tx pgx.Tx) CashRegisterRepositoryFacade
}
