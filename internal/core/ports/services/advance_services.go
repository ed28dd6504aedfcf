package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
)

type AdvanceSvc interface {
	GetAdvance(ctx context.Context, advanceID string) (*domain.Advance, error)
	ListAdvances(ctx context.Context, params dto.ListAdvancesParams) ([]domain.Advance, error)
}
