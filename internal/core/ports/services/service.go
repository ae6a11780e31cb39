package services

// ServiceContainer bundles all service facade implementations and is the
// single dependency handed to the HTTP layer.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	Settings    SettingsSvcFacade
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Budget      BudgetSvcFacade
	Goal        GoalSvcFacade
	Summary     SummarySvcFacade
}
