package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// balanceService is the only writer of account balances and the register amount.
// Locks are always taken account first, then register.
type balanceService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	registerRepo portsrepo.CashRegisterRepositoryFacade
}

// NewBalanceService creates the balance update engine.
func NewBalanceService(accountRepo portsrepo.AccountRepositoryFacade, registerRepo portsrepo.CashRegisterRepositoryFacade, opts ...ServiceOption) portssvc.BalanceEngine {
	return &balanceService{
		BaseService:  newBaseService(nil, opts),
		accountRepo:  accountRepo,
		registerRepo: registerRepo,
	}
}

var _ portssvc.BalanceEngine = (*balanceService)(nil)

// ApplyMovement adds the movement's effect to its account and, for cash movements, the register.
func (s *balanceService) ApplyMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement, userID string) error {
	return s.post(ctx, tx, movement, accounting.MovementEffect(movement.Amount, movement.IsIncome), userID)
}

// RevertMovement undoes exactly what ApplyMovement did for the same movement.
func (s *balanceService) RevertMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement, userID string) error {
	return s.post(ctx, tx, movement, accounting.ReversalEffect(movement.Amount, movement.IsIncome), userID)
}

func (s *balanceService) post(ctx context.Context, tx pgx.Tx, m domain.Movement, delta decimal.Decimal, userID string) error {
	policy, ok := domain.MovementPolicyFor(m.Type)
	if !ok {
		return validationError(fmt.Errorf("%w: %q", domain.ErrUnknownMovementType, m.Type))
	}
	now := s.Now()

	if policy.AffectsAccountBalance && !m.Account.IsNone() {
		accounts := s.accountRepo.WithTx(tx)
		acc, err := accounts.FindAccountByIDForUpdate(ctx, m.Account.AccountID)
		if err != nil {
			return fmt.Errorf("failed to lock account %s: %w", m.Account.AccountID, err)
		}
		if err := accounts.UpdateAccountBalance(ctx, acc.AccountID, delta, userID, now); err != nil {
			return fmt.Errorf("failed to update balance of account %s: %w", acc.AccountID, err)
		}
		s.LogDebug(ctx, "Account balance updated",
			slog.String("account_id", acc.AccountID),
			slog.String("movement_id", m.MovementID),
			slog.String("delta", delta.String()))
	}

	if m.IsCash() {
		registers := s.registerRepo.WithTx(tx)
		register, err := registers.FindCashRegisterForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock cash register: %w", err)
		}
		if err := registers.AddToCashRegister(ctx, register.CashRegisterID, delta, userID, now); err != nil {
			return fmt.Errorf("failed to update cash register: %w", err)
		}
		s.LogDebug(ctx, "Cash register updated",
			slog.String("movement_id", m.MovementID),
			slog.String("delta", delta.String()))
	}
	return nil
}
