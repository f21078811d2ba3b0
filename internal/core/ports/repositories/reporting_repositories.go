package repositories

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// ReportingRepositoryFacade defines the derived read views the UI refetches
// after each posting.
type ReportingRepositoryFacade interface {
	// ListReceivables returns SALE records with an outstanding balance.
	ListReceivables(ctx context.Context) ([]domain.SaleRecord, error)

	// ListPayables returns PURCHASE records with an outstanding balance.
	ListPayables(ctx context.Context) ([]domain.PurchaseRecord, error)
}
