package repositories

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MovementReader defines read operations for one kind of movement.
type MovementReader interface {
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// FindMovementByIDForUpdate loads the movement and locks its row.
	FindMovementByIDForUpdate(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements returns movements ordered by date then creation time, newest first.
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.Movement, error)
}

// MovementWriter defines write operations for one kind of movement.
type MovementWriter interface {
	SaveMovement(ctx context.Context, movement domain.Movement) error

	// UpdateMovement overwrites every mutable column, including is_active.
	UpdateMovement(ctx context.Context, movement domain.Movement) error
}

// MovementRepositoryFacade is the storage of either cash or non-cash movements.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter

	// Kind reports which movement table the repository is bound to.
	Kind() domain.MovementKind

	WithTx(tx pgx.Tx) MovementRepositoryFacade
}
