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

type vehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewVehicleService(txManager portsrepo.TransactionManager, vehicleRepo portsrepo.VehicleRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, opts ...ServiceOption) portssvc.VehicleSvcFacade {
	return &vehicleService{
		BaseService: newBaseService(txManager, opts),
		vehicleRepo: vehicleRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.VehicleSvcFacade = (*vehicleService)(nil)

// normalizePlate upper-cases the plate and strips spaces and dashes so "ab 123-cd" and "AB123CD" collide.
func normalizePlate(plate string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.ToUpper(strings.TrimSpace(plate)))
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, userID string) (*domain.Vehicle, *domain.Account, error) {
	now := s.Now()
	audit := newAudit(now, userID)
	vehicle := domain.Vehicle{
		VehicleID:    uuid.NewString(),
		LicensePlate: normalizePlate(req.LicensePlate),
		Brand:        strings.TrimSpace(req.Brand),
		Model:        strings.TrimSpace(req.Model),
		Year:         req.Year,
		IsActive:     true,
		AuditFields:  audit,
	}
	if vehicle.LicensePlate == "" {
		return nil, nil, fmt.Errorf("%w: license plate is required", apperrors.ErrValidation)
	}
	account := newOwnerAccount(domain.AccountKindVehicle, vehicle.VehicleID, now, audit)

	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.vehicleRepo.WithTx(tx).SaveVehicle(ctx, vehicle); err != nil {
			return fmt.Errorf("failed to save vehicle: %w", err)
		}
		if err := s.accountRepo.WithTx(tx).SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to open vehicle account: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create vehicle", slog.String("license_plate", vehicle.LicensePlate))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("account_id", account.AccountID))
	return &vehicle, &account, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, err)
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, params dto.ListOwnersParams) ([]domain.Vehicle, error) {
	status, ok := domain.ParseStatus(params.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
	}
	return s.vehicleRepo.ListVehicles(ctx, status, pagination.ClampLimit(params.Limit), params.Offset)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, userID string) (*domain.Vehicle, error) {
	vehicle, err := s.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsActive {
		return nil, fmt.Errorf("%w: vehicle %s is inactive", apperrors.ErrConflict, vehicleID)
	}
	if req.Brand != nil {
		vehicle.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		vehicle.Model = strings.TrimSpace(*req.Model)
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	vehicle.LastUpdatedAt = s.Now()
	vehicle.LastUpdatedBy = userID

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		s.LogError(ctx, err, "Failed to update vehicle", slog.String("vehicle_id", vehicleID))
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) DeactivateVehicle(ctx context.Context, vehicleID string, userID string) error {
	err := s.InTransaction(ctx, func(tx pgx.Tx) error {
		vehicles := s.vehicleRepo.WithTx(tx)
		vehicle, err := vehicles.FindVehicleByID(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("vehicle %s: %w", vehicleID, err)
		}
		if !vehicle.IsActive {
			return fmt.Errorf("vehicle %s is already inactive: %w", vehicleID, apperrors.ErrNotFound)
		}
		now := s.Now()
		if err := vehicles.DeactivateVehicle(ctx, vehicleID, userID, now); err != nil {
			return err
		}
		return s.accountRepo.WithTx(tx).DeactivateAccountByOwner(ctx, domain.AccountKindVehicle, vehicleID, userID, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to deactivate vehicle", slog.String("vehicle_id", vehicleID))
		return err
	}
	return nil
}
