package repositories

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchase records.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase record with its line items and payment history.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error)

	// FindReturnsByOriginalPurchaseID retrieves all RETURN children of a purchase.
	FindReturnsByOriginalPurchaseID(ctx context.Context, purchaseID string) ([]domain.PurchaseRecord, error)

	// SumReturnedQuantities returns, per product, the quantity already returned
	// across all RETURN children of the given purchase.
	SumReturnedQuantities(ctx context.Context, originalPurchaseID string) (map[string]int64, error)

	// ListPurchases retrieves a paginated list of purchase records using
	// token-based pagination.
	ListPurchases(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseRecord, *string, error)
}

// PurchaseWriter defines the atomic posting operations for purchase records,
// mirroring SaleWriter on the supplier side.
type PurchaseWriter interface {
	CreatePurchase(ctx context.Context, purchase domain.PurchaseRecord, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error

	CreatePurchaseReturn(ctx context.Context, ret domain.PurchaseRecord, debtCut *domain.PaymentEntry, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error

	AddPurchaseRepayment(ctx context.Context, purchaseID string, payment domain.PaymentEntry, cashEntry domain.CashEntry) (*domain.PurchaseRecord, error)

	DeletePurchaseCascade(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities.
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
