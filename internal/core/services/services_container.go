package services

import (
	portsrepo "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	engine := NewBalanceService(repos.AccountRepo, repos.CashRegisterRepo, opts...)

	movementDeps := func(repo portsrepo.MovementRepositoryFacade) MovementServiceDeps {
		return MovementServiceDeps{
			TxManager:    repos.TxManager,
			MovementRepo: repo,
			AccountRepo:  repos.AccountRepo,
			RegisterRepo: repos.CashRegisterRepo,
			AdvanceRepo:  repos.AdvanceRepo,
			Engine:       engine,
		}
	}

	return &portssvc.ServiceContainer{
		CashMovement:    NewMovementService(movementDeps(repos.CashMovementRepo), opts...),
		NonCashMovement: NewMovementService(movementDeps(repos.NonCashMovementRepo), opts...),
		CashRegister:    NewCashRegisterService(repos.TxManager, repos.CashRegisterRepo, opts...),
		Account:         NewAccountService(repos.AccountRepo, opts...),
		AccountHistory:  NewAccountHistoryService(repos.AccountRepo, repos.AccountHistoryRepo, opts...),
		Advance:         NewAdvanceService(repos.AdvanceRepo, opts...),
		Member:          NewMemberService(repos.TxManager, repos.MemberRepo, repos.AccountRepo, opts...),
		Subscriber:      NewSubscriberService(repos.TxManager, repos.SubscriberRepo, repos.AccountRepo, opts...),
		Vehicle:         NewVehicleService(repos.TxManager, repos.VehicleRepo, repos.AccountRepo, opts...),
		Auth:            NewAuthService(cfg, opts...),
	}
}
