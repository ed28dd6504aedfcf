package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/utils/pagination"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates the read-only account service.
func NewAccountService(accountRepo portsrepo.AccountReader, opts ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{BaseService: newBaseService(nil, opts), accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	return acc, nil
}

func (s *accountService) GetAccountByOwner(ctx context.Context, kind domain.AccountKind, ownerID string) (*domain.Account, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", apperrors.ErrValidation, kind)
	}
	acc, err := s.accountRepo.FindAccountByOwner(ctx, kind, ownerID)
	if err != nil {
		return nil, fmt.Errorf("account of %s %s: %w", kind, ownerID, err)
	}
	return acc, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	status, ok := domain.ParseStatus(params.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}
	filter := domain.AccountFilter{Kind: domain.AccountKind(params.Kind), Status: status}
	if filter.Kind != "" && !filter.Kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown account kind %q", apperrors.ErrValidation, params.Kind)
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, filter, pagination.ClampLimit(params.Limit), params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("kind", params.Kind))
		return nil, err
	}
	return accounts, nil
}

type accountHistoryService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	historyRepo portsrepo.AccountHistoryRepositoryFacade
}

func NewAccountHistoryService(accountRepo portsrepo.AccountReader, historyRepo portsrepo.AccountHistoryRepositoryFacade, opts ...ServiceOption) portssvc.AccountHistorySvc {
	return &accountHistoryService{BaseService: newBaseService(nil, opts), accountRepo: accountRepo, historyRepo: historyRepo}
}

var _ portssvc.AccountHistorySvc = (*accountHistoryService)(nil)

// ListAccountHistory returns the monthly snapshots of an account, oldest first.
func (s *accountHistoryService) ListAccountHistory(ctx context.Context, accountID string) ([]domain.AccountHistory, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	history, err := s.historyRepo.ListAccountHistory(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account history", slog.String("account_id", accountID))
		return nil, err
	}
	return history, nil
}
