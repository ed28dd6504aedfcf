package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BalanceEngine applies and reverts the effect of a movement on its account and the cash register.
// Both run on the caller's transaction and never commit.
type BalanceEngine interface {
	ApplyMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement, userID string) error
	RevertMovement(ctx context.Context, tx pgx.Tx, movement domain.Movement, userID string) error
}
