package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type cashRegisterService struct {
	BaseService
	registerRepo portsrepo.CashRegisterRepositoryFacade
}

func NewCashRegisterService(txManager portsrepo.TransactionManager, registerRepo portsrepo.CashRegisterRepositoryFacade, opts ...ServiceOption) portssvc.CashRegisterSvc {
	return &cashRegisterService{BaseService: newBaseService(txManager, opts), registerRepo: registerRepo}
}

var _ portssvc.CashRegisterSvc = (*cashRegisterService)(nil)

func (s *cashRegisterService) GetCashRegister(ctx context.Context) (*domain.CashRegister, error) {
	register, err := s.registerRepo.GetOrCreateCashRegister(ctx, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to load cash register")
		return nil, err
	}
	return register, nil
}

func (s *cashRegisterService) UpdateCashRegisterAmount(ctx context.Context, amount decimal.Decimal, userID string) (*domain.CashRegister, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, validationError(err)
	}

	var register *domain.CashRegister
	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		now := s.Now()
		registers := s.registerRepo.WithTx(tx)
		if _, err := registers.GetOrCreateCashRegister(ctx, now); err != nil {
			return fmt.Errorf("failed to load cash register: %w", err)
		}
		locked, err := registers.FindCashRegisterForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("failed to lock cash register: %w", err)
		}
		previous := locked.Amount
		if err := registers.SetCashRegisterAmount(ctx, locked.CashRegisterID, amount, userID, now); err != nil {
			return fmt.Errorf("failed to set cash register amount: %w", err)
		}
		locked.Amount = amount
		locked.LastUpdatedAt = now
		locked.LastUpdatedBy = userID
		register = locked

		s.LogInfo(ctx, "Cash register amount set",
			slog.String("previous", previous.String()),
			slog.String("amount", amount.String()))
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update cash register")
		return nil, err
	}
	return register, nil
}
