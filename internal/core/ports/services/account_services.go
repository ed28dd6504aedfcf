package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
)

// AccountSvcFacade exposes read access to accounts. Balances only move through movements.
type AccountSvcFacade interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByOwner(ctx context.Context, kind domain.AccountKind, ownerID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountHistorySvc exposes monthly balance snapshots.
type AccountHistorySvc interface {
	ListAccountHistory(ctx context.Context, accountID string) ([]domain.AccountHistory, error)
}
