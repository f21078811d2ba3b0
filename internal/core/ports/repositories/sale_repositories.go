package repositories

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// SaleReader defines read operations for sale records.
type SaleReader interface {
	// FindSaleByID retrieves a sale record with its line items and payment history.
	FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)

	// FindReturnsByOriginalSaleID retrieves all RETURN children of a sale.
	FindReturnsByOriginalSaleID(ctx context.Context, saleID string) ([]domain.SaleRecord, error)

	// SumReturnedQuantities returns, per product, the quantity already returned
	// across all RETURN children of the given sale.
	SumReturnedQuantities(ctx context.Context, originalSaleID string) (map[string]int64, error)

	// ListSales retrieves a paginated list of sale records using token-based
	// pagination. It returns the records, a token for the next page, and an error.
	ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.SaleRecord, *string, error)
}

// SaleWriter defines the atomic posting operations for sale records. Each
// method runs its record, stock and cash effects in a single database
// transaction: they succeed or fail together.
type SaleWriter interface {
	// CreateSale inserts the sale with its items, applies the stock deltas and
	// writes the cash entry (nil when no cash moved) in one transaction.
	CreateSale(ctx context.Context, sale domain.SaleRecord, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error

	// CreateSaleReturn inserts the RETURN record, appends the debt-cut payment
	// entry to the parent (nil when no debt was cut), updates the parent's paid
	// amount, status and isReturned flag, applies the stock deltas and writes
	// the cash entry, all in one transaction.
	CreateSaleReturn(ctx context.Context, ret domain.SaleRecord, debtCut *domain.PaymentEntry, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error

	// AddSaleRepayment appends a payment entry, bumps the parent's paid amount
	// and status under a row lock, and writes the settlement cash entry in one
	// transaction. It returns the updated record.
	AddSaleRepayment(ctx context.Context, saleID string, payment domain.PaymentEntry, cashEntry domain.CashEntry) (*domain.SaleRecord, error)

	// DeleteSaleCascade reverses and removes the record together with all its
	// RETURN children, their cash entries and stock effects, and, when the
	// target is itself a RETURN, restores the parent's debt, in one transaction.
	DeleteSaleCascade(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities.
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
