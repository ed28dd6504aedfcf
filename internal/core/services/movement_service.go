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
	"github.com/SscSPs/taxi_coop_backoffice/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// movementService orchestrates the lifecycle of one kind of movement (cash or non-cash).
// Every mutation runs in a single transaction: balance effects, the movement row and its derived advance.
type movementService struct {
	BaseService
	kind         domain.MovementKind
	movementRepo portsrepo.MovementRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	registerRepo portsrepo.CashRegisterRepositoryFacade
	advanceRepo  portsrepo.AdvanceRepositoryFacade
	engine       portssvc.BalanceEngine
}

// MovementServiceDeps groups the collaborators of a movement service.
type MovementServiceDeps struct {
	TxManager    portsrepo.TransactionManager
	MovementRepo portsrepo.MovementRepositoryFacade
	AccountRepo  portsrepo.AccountRepositoryFacade
	RegisterRepo portsrepo.CashRegisterRepositoryFacade
	AdvanceRepo  portsrepo.AdvanceRepositoryFacade
	Engine       portssvc.BalanceEngine
}

// NewMovementService creates a movement service for the kind its repository stores.
func NewMovementService(deps MovementServiceDeps, opts ...ServiceOption) portssvc.MovementSvcFacade {
	return &movementService{
		BaseService:  newBaseService(deps.TxManager, opts),
		kind:         deps.MovementRepo.Kind(),
		movementRepo: deps.MovementRepo,
		accountRepo:  deps.AccountRepo,
		registerRepo: deps.RegisterRepo,
		advanceRepo:  deps.AdvanceRepo,
		engine:       deps.Engine,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) CreateMovement(ctx context.Context, req dto.MovementRequest, userID string) (*domain.Movement, error) {
	spec, err := req.ToSpec()
	if err != nil {
		return nil, validationError(err)
	}

	now := s.Now()
	movement := domain.Movement{
		MovementID: uuid.NewString(),
		Kind:       s.kind,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	applySpec(&movement, spec)

	err = s.InTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.resolveAccount(ctx, tx, spec.Account); err != nil {
			return err
		}
		if movement.IsCash() {
			register, err := s.registerRepo.WithTx(tx).GetOrCreateCashRegister(ctx, now)
			if err != nil {
				return fmt.Errorf("failed to load cash register: %w", err)
			}
			movement.CashRegisterID = register.CashRegisterID
		}
		if err := s.engine.ApplyMovement(ctx, tx, movement, userID); err != nil {
			return err
		}
		if err := s.movementRepo.WithTx(tx).SaveMovement(ctx, movement); err != nil {
			return fmt.Errorf("failed to save movement: %w", err)
		}
		return s.recordAdvance(ctx, tx, movement, userID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create movement",
			slog.String("kind", string(s.kind)),
			slog.String("type", string(spec.Type)))
		return nil, err
	}

	s.LogInfo(ctx, "Movement created",
		slog.String("movement_id", movement.MovementID),
		slog.String("kind", string(s.kind)),
		slog.String("type", string(movement.Type)),
		slog.String("account", movement.Account.String()),
		slog.String("amount", movement.Amount.String()),
		slog.Bool("is_income", movement.IsIncome))
	return &movement, nil
}

func (s *movementService) UpdateMovement(ctx context.Context, movementID string, req dto.MovementRequest, userID string) (*domain.Movement, error) {
	spec, err := req.ToSpec()
	if err != nil {
		return nil, validationError(err)
	}

	var updated domain.Movement
	err = s.InTransaction(ctx, func(tx pgx.Tx) error {
		movements := s.movementRepo.WithTx(tx)
		existing, err := s.loadActiveForUpdate(ctx, movements, movementID)
		if err != nil {
			return err
		}
		if err := s.resolveAccount(ctx, tx, spec.Account); err != nil {
			return err
		}

		if err := s.dropAdvance(ctx, tx, *existing); err != nil {
			return err
		}
		if err := s.engine.RevertMovement(ctx, tx, *existing, userID); err != nil {
			return err
		}

		updated = *existing
		applySpec(&updated, spec)
		updated.LastUpdatedAt = s.Now()
		updated.LastUpdatedBy = userID

		if err := s.engine.ApplyMovement(ctx, tx, updated, userID); err != nil {
			return err
		}
		if err := movements.UpdateMovement(ctx, updated); err != nil {
			return fmt.Errorf("failed to update movement: %w", err)
		}
		return s.recordAdvance(ctx, tx, updated, userID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update movement", slog.String("movement_id", movementID))
		return nil, err
	}

	s.LogInfo(ctx, "Movement updated",
		slog.String("movement_id", movementID),
		slog.String("type", string(updated.Type)),
		slog.String("amount", updated.Amount.String()))
	return &updated, nil
}

// DeleteMovement reverts the movement's effect and soft-deletes it.
func (s *movementService) DeleteMovement(ctx context.Context, movementID string, userID string) error {
	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		movements := s.movementRepo.WithTx(tx)
		existing, err := s.loadActiveForUpdate(ctx, movements, movementID)
		if err != nil {
			return err
		}
		if err := s.dropAdvance(ctx, tx, *existing); err != nil {
			return err
		}
		if err := s.engine.RevertMovement(ctx, tx, *existing, userID); err != nil {
			return err
		}

		existing.IsActive = false
		existing.LastUpdatedAt = s.Now()
		existing.LastUpdatedBy = userID
		if err := movements.UpdateMovement(ctx, *existing); err != nil {
			return fmt.Errorf("failed to deactivate movement: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete movement", slog.String("movement_id", movementID))
		return err
	}

	s.LogInfo(ctx, "Movement deleted", slog.String("movement_id", movementID), slog.String("kind", string(s.kind)))
	return nil
}

func (s *movementService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("movement %s: %w", movementID, err)
	}
	return movement, nil
}

func (s *movementService) ListMovements(ctx context.Context, params dto.ListMovementsParams) ([]domain.Movement, string, error) {
	status, ok := domain.ParseStatus(params.Status)
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}

	limit := pagination.ClampLimit(params.Limit)
	filter := domain.MovementFilter{
		AccountID: params.AccountID,
		Status:    status,
		// One extra row tells us whether another page exists.
		Limit: limit + 1,
	}
	if !params.From.IsZero() {
		from := domain.StartOfDay(params.From)
		filter.From = &from
	}
	if !params.To.IsZero() {
		to := domain.StartOfDay(params.To)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, "", fmt.Errorf("%w: 'to' must not be before 'from'", apperrors.ErrValidation)
	}
	if params.NextToken != "" {
		afterDate, afterCreatedAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		filter.AfterDate, filter.AfterCreatedAt = afterDate, afterCreatedAt
	}

	movements, err := s.movementRepo.ListMovements(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements", slog.String("kind", string(s.kind)))
		return nil, "", err
	}

	nextToken := ""
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[limit-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return movements, nextToken, nil
}

// resolveAccount checks that the referenced account exists, is active and has the expected kind.
func (s *movementService) resolveAccount(ctx context.Context, tx pgx.Tx, ref domain.AccountRef) error {
	if ref.IsNone() {
		return nil
	}
	acc, err := s.accountRepo.WithTx(tx).FindAccountByID(ctx, ref.AccountID)
	if err != nil {
		return fmt.Errorf("account %s: %w", ref.AccountID, err)
	}
	if !acc.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.AccountID)
	}
	if acc.Kind != ref.Kind {
		return fmt.Errorf("%w: account %s is a %s account, not %s", apperrors.ErrValidation, acc.AccountID, acc.Kind, ref.Kind)
	}
	return nil
}

func (s *movementService) loadActiveForUpdate(ctx context.Context, movements portsrepo.MovementRepositoryFacade, movementID string) (*domain.Movement, error) {
	existing, err := movements.FindMovementByIDForUpdate(ctx, movementID)
	if err != nil {
		return nil, fmt.Errorf("movement %s: %w", movementID, err)
	}
	if !existing.IsActive {
		return nil, fmt.Errorf("movement %s is deleted: %w", movementID, apperrors.ErrNotFound)
	}
	return existing, nil
}

func (s *movementService) recordAdvance(ctx context.Context, tx pgx.Tx, m domain.Movement, userID string) error {
	if m.Type != domain.MovementTypeAdvance {
		return nil
	}
	advance := domain.Advance{
		AdvanceID:       uuid.NewString(),
		MovementID:      m.MovementID,
		MovementKind:    m.Kind,
		MemberAccountID: m.Account.AccountID,
		Date:            m.Date,
		Amount:          m.Amount,
		Description:     m.Description,
		CreatedAt:       s.Now(),
		CreatedBy:       userID,
	}
	if err := s.advanceRepo.WithTx(tx).SaveAdvance(ctx, advance); err != nil {
		return fmt.Errorf("failed to save advance: %w", err)
	}
	return nil
}

func (s *movementService) dropAdvance(ctx context.Context, tx pgx.Tx, m domain.Movement) error {
	if m.Type != domain.MovementTypeAdvance {
		return nil
	}
	if err := s.advanceRepo.WithTx(tx).DeleteAdvancesByMovement(ctx, m.Kind, m.MovementID); err != nil {
		return fmt.Errorf("failed to delete advance of movement %s: %w", m.MovementID, err)
	}
	return nil
}

func applySpec(m *domain.Movement, spec domain.MovementSpec) {
	m.Account = spec.Account
	m.Description = spec.Description
	m.Amount = spec.Amount
	m.Date = spec.Date
	m.Type = spec.Type
	m.IsIncome = spec.IsIncome
}
