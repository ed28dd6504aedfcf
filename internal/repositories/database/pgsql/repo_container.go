package pgsql

import (
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	txManager := newBaseRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:           &txManager,
		AccountRepo:         newPgxAccountRepository(dbPool),
		CashRegisterRepo:    newPgxCashRegisterRepository(dbPool),
		CashMovementRepo:    newPgxMovementRepository(dbPool, domain.MovementKindCash),
		NonCashMovementRepo: newPgxMovementRepository(dbPool, domain.MovementKindNonCash),
		AdvanceRepo:         newPgxAdvanceRepository(dbPool),
		MemberRepo:          newPgxMemberRepository(dbPool),
		SubscriberRepo:      newPgxSubscriberRepository(dbPool),
		VehicleRepo:         newPgxVehicleRepository(dbPool),
		AccountHistoryRepo:  newPgxAccountHistoryRepository(dbPool),
	}
}
