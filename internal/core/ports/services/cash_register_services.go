package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CashRegisterSvc interface {
	GetCashRegister(ctx context.Context) (*domain.CashRegister, error)

	// UpdateCashRegisterAmount overwrites the register amount, e.g. after a physical count.
	UpdateCashRegisterAmount(ctx context.Context, amount decimal.Decimal, userID string) (*domain.CashRegister, error)
}
