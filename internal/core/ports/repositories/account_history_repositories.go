package repositories

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
)

// AccountHistoryRepositoryFacade persists monthly balance snapshots.
type AccountHistoryRepositoryFacade interface {
	ListAccountHistory(ctx context.Context, accountID string) ([]domain.AccountHistory, error)

	// SaveAccountHistory inserts a snapshot. inserted is false when the period was already recorded.
	SaveAccountHistory(ctx context.Context, history domain.AccountHistory) (inserted bool, err error)
}
