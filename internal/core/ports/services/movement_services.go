package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
)

// MovementReaderSvc defines read operations for movements of one kind.
type MovementReaderSvc interface {
	GetMovement(ctx context.Context, movementID string) (*domain.Movement, error)

	// ListMovements returns a page of movements and the token for the next page, empty on the last page.
	ListMovements(ctx context.Context, params dto.ListMovementsParams) ([]domain.Movement, string, error)
}

// MovementWriterSvc defines the create/update/delete lifecycle of movements of one kind.
type MovementWriterSvc interface {
	CreateMovement(ctx context.Context, req dto.MovementRequest, userID string) (*domain.Movement, error)
	UpdateMovement(ctx context.Context, movementID string, req dto.MovementRequest, userID string) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, movementID string, userID string) error
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	MovementReaderSvc
	MovementWriterSvc
}
