package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
)

// PurchaseSvcFacade exposes the supplier-side ledger operations, mirroring
// SaleSvcFacade.
type PurchaseSvcFacade interface {
	PostPurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.PurchaseRecord, error)

	PostReturn(ctx context.Context, originalPurchaseID string, req dto.CreateReturnRequest, userID string) (*domain.PurchaseRecord, error)

	PostRepayment(ctx context.Context, purchaseID string, req dto.CreateRepaymentRequest, userID string) (*domain.PurchaseRecord, error)

	DeletePurchase(ctx context.Context, purchaseID string) error

	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error)

	ListReturns(ctx context.Context, purchaseID string) ([]domain.PurchaseRecord, error)

	GetOutstanding(ctx context.Context, purchaseID string) (decimal.Decimal, error)

	ListPurchases(ctx context.Context, params dto.ListPurchasesParams) (*dto.ListPurchasesResponse, error)
}
