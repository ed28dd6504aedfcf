package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type memberService struct {
	BaseService
	memberRepo  portsrepo.MemberRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewMemberService(txManager portsrepo.TransactionManager, memberRepo portsrepo.MemberRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, opts ...ServiceOption) portssvc.MemberSvcFacade {
	return &memberService{
		BaseService: newBaseService(txManager, opts),
		memberRepo:  memberRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// CreateMember registers the member and opens its account with a zero balance.
func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, userID string) (*domain.Member, *domain.Account, error) {
	now := s.Now()
	audit := newAudit(now, userID)
	member := domain.Member{
		MemberID:       uuid.NewString(),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		DocumentNumber: strings.TrimSpace(req.DocumentNumber),
		Phone:          strings.TrimSpace(req.Phone),
		IsActive:       true,
		AuditFields:    audit,
	}
	account := newOwnerAccount(domain.AccountKindMember, member.MemberID, now, audit)

	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.memberRepo.WithTx(tx).SaveMember(ctx, member); err != nil {
			return fmt.Errorf("failed to save member: %w", err)
		}
		if err := s.accountRepo.WithTx(tx).SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to open member account: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create member", slog.String("document_number", member.DocumentNumber))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Member created", slog.String("member_id", member.MemberID), slog.String("account_id", account.AccountID))
	return &member, &account, nil
}

func (s *memberService) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", memberID, err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, params dto.ListOwnersParams) ([]domain.Member, error) {
	status, ok := domain.ParseStatus(params.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}
	return s.memberRepo.ListMembers(ctx, status, pagination.ClampLimit(params.Limit), params.Offset)
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, userID string) (*domain.Member, error) {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, fmt.Errorf("%w: member %s is inactive", apperrors.ErrConflict, memberID)
	}

	if req.FirstName != nil {
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	member.LastUpdatedAt = s.Now()
	member.LastUpdatedBy = userID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}
	return member, nil
}

// DeactivateMember soft-deletes the member together with its account.
func (s *memberService) DeactivateMember(ctx context.Context, memberID string, userID string) error {
	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		members := s.memberRepo.WithTx(tx)
		member, err := members.FindMemberByID(ctx, memberID)
		if err != nil {
			return fmt.Errorf("member %s: %w", memberID, err)
		}
		if !member.IsActive {
			return fmt.Errorf("member %s is already inactive: %w", memberID, apperrors.ErrNotFound)
		}
		now := s.Now()
		if err := members.DeactivateMember(ctx, memberID, userID, now); err != nil {
			return err
		}
		return s.accountRepo.WithTx(tx).DeactivateAccountByOwner(ctx, domain.AccountKindMember, memberID, userID, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to deactivate member", slog.String("member_id", memberID))
		return err
	}
	s.LogInfo(ctx, "Member deactivated", slog.String("member_id", memberID))
	return nil
}

func newAudit(now time.Time, userID string) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

func newOwnerAccount(kind domain.AccountKind, ownerID string, now time.Time, audit domain.AuditFields) domain.Account {
	return domain.Account{
		AccountID:    uuid.NewString(),
		Kind:         kind,
		OwnerID:      ownerID,
		Balance:      decimal.Zero,
		LastModified: domain.StartOfDay(now),
		IsActive:     true,
		AuditFields:  audit,
	}
}
