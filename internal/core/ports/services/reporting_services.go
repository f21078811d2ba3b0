package services

import (
	"context"
	"time"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// ReportingSvcFacade serves the derived views the UI refetches after each
// posting: receivables, payables and the cashflow report.
type ReportingSvcFacade interface {
	ListReceivables(ctx context.Context) ([]domain.SaleRecord, error)
	ListPayables(ctx context.Context) ([]domain.PurchaseRecord, error)
	CashflowReport(ctx context.Context, from, to time.Time) (*domain.CashflowSummary, error)
}
