package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	saleRepo := newPgxSaleRepository(dbPool)
	purchaseRepo := newPgxPurchaseRepository(dbPool)
	cashbookRepo := newPgxCashbookRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	bankRepo := newPgxBankRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SaleRepo:      saleRepo,
		PurchaseRepo:  purchaseRepo,
		CashbookRepo:  cashbookRepo,
		ProductRepo:   productRepo,
		UserRepo:      userRepo,
		BankRepo:      bankRepo,
		ReportingRepo: reportingRepo,
	}
}
