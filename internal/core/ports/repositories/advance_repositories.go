package repositories

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AdvanceReader defines read operations for advances.
type AdvanceReader interface {
	FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error)
	ListAdvances(ctx context.Context, filter domain.AdvanceFilter) ([]domain.Advance, error)
}

// AdvanceWriter defines write operations for advances.
type AdvanceWriter interface {
	SaveAdvance(ctx context.Context, advance domain.Advance) error

	// DeleteAdvancesByMovement removes the advance derived from a movement, if any.
	DeleteAdvancesByMovement(ctx context.Context, kind domain.MovementKind, movementID string) error
}

type AdvanceRepositoryFacade interface {
	AdvanceReader
	AdvanceWriter
	WithTx(tx pgx.Tx) AdvanceRepositoryFacade
}
