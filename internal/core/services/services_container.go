package services

import (
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sale:      NewSaleService(repos.SaleRepo, repos.ProductRepo, repos.BankRepo, repos.UserRepo),
		Purchase:  NewPurchaseService(repos.PurchaseRepo, repos.ProductRepo, repos.BankRepo, repos.UserRepo),
		Cashbook:  NewCashbookService(repos.CashbookRepo, repos.BankRepo, repos.UserRepo),
		Product:   NewProductService(repos.ProductRepo),
		User:      NewUserService(repos.UserRepo),
		Bank:      NewBankService(repos.BankRepo),
		Reporting: NewReportingService(repos.ReportingRepo, repos.CashbookRepo),
	}
}
