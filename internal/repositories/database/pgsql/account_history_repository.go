package pgsql

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/taxi_coop_backoffice/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountHistoryRepository struct {
	BaseRepository
}

func newPgxAccountHistoryRepository(pool *pgxpool.Pool) *PgxAccountHistoryRepository {
	return &PgxAccountHistoryRepository{BaseRepository: newBaseRepository(pool)}
}

var _ portsrepo.AccountHistoryRepositoryFacade = (*PgxAccountHistoryRepository)(nil)

// SaveAccountHistory inserts the snapshot unless the account already has one for the period.
func (r *PgxAccountHistoryRepository) SaveAccountHistory(ctx context.Context, h domain.AccountHistory) (bool, error) {
	query := `
		INSERT INTO account_histories (account_history_id, account_id, period, balance, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, period) DO NOTHING;
	`
	tag, err := r.db.Exec(ctx, query, h.AccountHistoryID, h.AccountID, h.Period, h.Balance, h.CreatedAt)
	if err != nil {
		return false, translateError(err, "failed to save history of account %s", h.AccountID)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxAccountHistoryRepository) ListAccountHistory(ctx context.Context, accountID string) ([]domain.AccountHistory, error) {
	query := `
		SELECT account_history_id, account_id, period, balance, created_at
		FROM account_histories
		WHERE account_id = $1
		ORDER BY period;
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, translateError(err, "failed to list history of account %s", accountID)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountHistory, error) {
		var m models.AccountHistory
		if err := row.Scan(&m.AccountHistoryID, &m.AccountID, &m.Period, &m.Balance, &m.CreatedAt); err != nil {
			return domain.AccountHistory{}, err
		}
		return domain.AccountHistory{
			AccountHistoryID: m.AccountHistoryID,
			AccountID:        m.AccountID,
			Period:           m.Period,
			Balance:          m.Balance,
			CreatedAt:        m.CreatedAt,
		}, nil
	})
}
