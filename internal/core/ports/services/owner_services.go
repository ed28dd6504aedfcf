package services

import (
	"context"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
)

// MemberSvcFacade manages members. Creating a member opens its account.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, userID string) (*domain.Member, *domain.Account, error)
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, params dto.ListOwnersParams) ([]domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, userID string) (*domain.Member, error)
	DeactivateMember(ctx context.Context, memberID string, userID string) error
}

// SubscriberSvcFacade manages subscribers. Creating a subscriber opens its account.
type SubscriberSvcFacade interface {
	CreateSubscriber(ctx context.Context, req dto.CreateSubscriberRequest, userID string) (*domain.Subscriber, *domain.Account, error)
	GetSubscriber(ctx context.Context, subscriberID string) (*domain.Subscriber, error)
	ListSubscribers(ctx context.Context, params dto.ListOwnersParams) ([]domain.Subscriber, error)
	UpdateSubscriber(ctx context.Context, subscriberID string, req dto.UpdateSubscriberRequest, userID string) (*domain.Subscriber, error)
	DeactivateSubscriber(ctx context.Context, subscriberID string, userID string) error
}

// VehicleSvcFacade manages vehicles. Creating a vehicle opens its account.
type VehicleSvcFacade interface {
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, userID string) (*domain.Vehicle, *domain.Account, error)
	GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, params dto.ListOwnersParams) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, userID string) (*domain.Vehicle, error)
	DeactivateVehicle(ctx context.Context, vehicleID string, userID string) error
}
