package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MemberRepositoryFacade persists cooperative members.
type MemberRepositoryFacade interface {
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, status domain.Status, limit int, offset int) ([]domain.Member, error)
	SaveMember(ctx context.Context, member domain.Member) error
	UpdateMember(ctx context.Context, member domain.Member) error
	DeactivateMember(ctx context.Context, memberID string, userID string, now time.Time) error
	WithTx(tx pgx.Tx) MemberRepositoryFacade
}

// SubscriberRepositoryFacade persists subscribers.
type SubscriberRepositoryFacade interface {
	FindSubscriberByID(ctx context.Context, subscriberID string) (*domain.Subscriber, error)
	ListSubscribers(ctx context.Context, status domain.Status, limit int, offset int) ([]domain.Subscriber, error)
	SaveSubscriber(ctx context.Context, subscriber domain.Subscriber) error
	UpdateSubscriber(ctx context.Context, subscriber domain.Subscriber) error
	DeactivateSubscriber(ctx context.Context, subscriberID string, userID string, now time.Time) error
	WithTx(tx pgx.Tx) SubscriberRepositoryFacade
}

// VehicleRepositoryFacade persists vehicles.
type VehicleRepositoryFacade interface {
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, status domain.Status, limit int, offset int) ([]domain.Vehicle, error)
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeactivateVehicle(ctx context.Context, vehicleID string, userID string, now time.Time) error
	WithTx(tx pgx.Tx) VehicleRepositoryFacade
}
