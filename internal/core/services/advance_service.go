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
)

// advanceService exposes advances. They are written only by the movement services.
type advanceService struct {
	BaseService
	advanceRepo portsrepo.AdvanceReader
}

func NewAdvanceService(advanceRepo portsrepo.AdvanceReader, opts ...ServiceOption) portssvc.AdvanceSvc {
	return &advanceService{BaseService: newBaseService(nil, opts), advanceRepo: advanceRepo}
}

var _ portssvc.AdvanceSvc = (*advanceService)(nil)

func (s *advanceService) GetAdvance(ctx context.Context, advanceID string) (*domain.Advance, error) {
	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, fmt.Errorf("advance %s: %w", advanceID, err)
	}
	return advance, nil
}

func (s *advanceService) ListAdvances(ctx context.Context, params dto.ListAdvancesParams) ([]domain.Advance, error) {
	filter := domain.AdvanceFilter{MemberAccountID: params.MemberAccountID}
	if !params.From.IsZero() {
		from := domain.StartOfDay(params.From)
		filter.From = &from
	}
	if !params.To.IsZero() {
		to := domain.StartOfDay(params.To)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("%w: 'to' must not be before 'from'", apperrors.ErrValidation)
	}

	advances, err := s.advanceRepo.ListAdvances(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list advances", slog.String("member_account_id", params.MemberAccountID))
		return nil, err
	}
	return advances, nil
}
