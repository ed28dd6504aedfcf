package services

// ServiceContainer holds instances of all the application services.
// It is the main entry point for handlers.
type ServiceContainer struct {
	CashMovement    MovementSvcFacade
	NonCashMovement MovementSvcFacade
	CashRegister    CashRegisterSvc
	Account         AccountSvcFacade
	AccountHistory  AccountHistorySvc
	Advance         AdvanceSvc
	Member          MemberSvcFacade
	Subscriber      SubscriberSvcFacade
	Vehicle         VehicleSvcFacade
	Auth            AuthService
}
