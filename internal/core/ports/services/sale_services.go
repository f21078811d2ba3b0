package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
)

// SaleSvcFacade exposes the sale-side ledger operations: the sale poster,
// return poster, repayment poster and cascade deleter.
type SaleSvcFacade interface {
	// PostSale validates the draft and posts the record together with its
	// stock and cash effects atomically.
	PostSale(ctx context.Context, req dto.CreateSaleRequest, cashierID string) (*domain.SaleRecord, error)

	// PostReturn posts a RETURN record against an existing sale, cutting
	// outstanding debt before any cash refund leaves the till.
	PostReturn(ctx context.Context, originalSaleID string, req dto.CreateReturnRequest, cashierID string) (*domain.SaleRecord, error)

	// PostRepayment settles part or all of a sale's outstanding balance.
	PostRepayment(ctx context.Context, saleID string, req dto.CreateRepaymentRequest, cashierID string) (*domain.SaleRecord, error)

	// DeleteSale reverses all side effects of the record and removes it,
	// cascading over its RETURN children.
	DeleteSale(ctx context.Context, saleID string) error

	// GetSaleByID retrieves a sale with items and payment history.
	GetSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error)

	// ListReturns retrieves the RETURN records posted against a sale, items
	// included.
	ListReturns(ctx context.Context, saleID string) ([]domain.SaleRecord, error)

	// GetOutstanding returns totalAmount - amountPaid, floored at zero.
	GetOutstanding(ctx context.Context, saleID string) (decimal.Decimal, error)

	// ListSales retrieves a page of sale records.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)
}
