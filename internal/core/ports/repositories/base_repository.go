package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the transaction a movement, its balance effects and its advance share.
// Repositories join it through WithTx.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback on an already committed or rolled back tx is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
