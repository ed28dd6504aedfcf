package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	TxManager           TransactionManager
	AccountRepo         AccountRepositoryFacade
	CashRegisterRepo    CashRegisterRepositoryFacade
	CashMovementRepo    MovementRepositoryFacade
	NonCashMovementRepo MovementRepositoryFacade
	AdvanceRepo         AdvanceRepositoryFacade
	MemberRepo          MemberRepositoryFacade
	SubscriberRepo      SubscriberRepositoryFacade
	VehicleRepo         VehicleRepositoryFacade
	AccountHistoryRepo  AccountHistoryRepositoryFacade
}
