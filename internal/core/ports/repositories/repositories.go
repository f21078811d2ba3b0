package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	SaleRepo      SaleRepositoryWithTx
	PurchaseRepo  PurchaseRepositoryWithTx
	CashbookRepo  CashbookRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	UserRepo      UserRepositoryFacade
	BankRepo      BankRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
