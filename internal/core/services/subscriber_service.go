package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type subscriberService struct {
	BaseService
	subscriberRepo portsrepo.SubscriberRepositoryFacade
	accountRepo    portsrepo.AccountRepositoryFacade
}

func NewSubscriberService(txManager portsrepo.TransactionManager, subscriberRepo portsrepo.SubscriberRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, opts ...ServiceOption) portssvc.SubscriberSvcFacade {
	return &subscriberService{
		BaseService:    newBaseService(txManager, opts),
		subscriberRepo: subscriberRepo,
		accountRepo:    accountRepo,
	}
}

var _ portssvc.SubscriberSvcFacade = (*subscriberService)(nil)

func (s *subscriberService) CreateSubscriber(ctx context.Context, req dto.CreateSubscriberRequest, userID string) (*domain.Subscriber, *domain.Account, error) {
	now := s.Now()
	audit := newAudit(now, userID)
	subscriber := domain.Subscriber{
		SubscriberID:   uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
		Phone:          strings.TrimSpace(req.Phone),
		IsActive:       true,
		AuditFields:    audit,
	}
	account := newOwnerAccount(domain.AccountKindSubscriber, subscriber.SubscriberID, now, audit)

	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.subscriberRepo.WithTx(tx).SaveSubscriber(ctx, subscriber); err != nil {
			return fmt.Errorf("failed to save subscriber: %w", err)
		}
		if err := s.accountRepo.WithTx(tx).SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to open subscriber account: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create subscriber", slog.String("document_number", subscriber.DocumentNumber))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Subscriber created", slog.String("subscriber_id", subscriber.SubscriberID), slog.String("account_id", account.AccountID))
	return &subscriber, &account, nil
}

func (s *subscriberService) GetSubscriber(ctx context.Context, subscriberID string) (*domain.Subscriber, error) {
	subscriber, err := s.subscriberRepo.FindSubscriberByID(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("subscriber %s: %w", subscriberID, err)
	}
	return subscriber, nil
}

func (s *subscriberService) ListSubscribers(ctx context.Context, params dto.ListOwnersParams) ([]domain.Subscriber, error) {
	status, ok := domain.ParseStatus(params.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}
	return s.subscriberRepo.ListSubscribers(ctx, status, pagination.ClampLimit(params.Limit), params.Offset)
}

func (s *subscriberService) UpdateSubscriber(ctx context.Context, subscriberID string, req dto.UpdateSubscriberRequest, userID string) (*domain.Subscriber, error) {
	subscriber, err := s.GetSubscriber(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if !subscriber.IsActive {
		return nil, fmt.Errorf("%w: subscriber %s is inactive", apperrors.ErrConflict, subscriberID)
	}
	if req.Name != nil {
		subscriber.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		subscriber.Phone = strings.TrimSpace(*req.Phone)
	}
	subscriber.LastUpdatedAt = s.Now()
	subscriber.LastUpdatedBy = userID

	if err := s.subscriberRepo.UpdateSubscriber(ctx, *subscriber); err != nil {
		s.LogError(ctx, err, "Failed to update subscriber", slog.String("subscriber_id", subscriberID))
		return nil, err
	}
	return subscriber, nil
}

func (s *subscriberService) DeactivateSubscriber(ctx context.Context, subscriberID string, userID string) error {
	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		subscribers := s.subscriberRepo.WithTx(tx)
		subscriber, err := subscribers.FindSubscriberByID(ctx, subscriberID)
		if err != nil {
			return fmt.Errorf("subscriber %s: %w", subscriberID, err)
		}
		if !subscriber.IsActive {
			return fmt.Errorf("subscriber %s is already inactive: %w", subscriberID, apperrors.ErrNotFound)
		}
		now := s.Now()
		if err := subscribers.DeactivateSubscriber(ctx, subscriberID, userID, now); err != nil {
			return err
		}
		return s.accountRepo.WithTx(tx).DeactivateAccountByOwner(ctx, domain.AccountKindSubscriber, subscriberID, userID, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to deactivate subscriber", slog.String("subscriber_id", subscriberID))
		return err
	}
	return nil
}
