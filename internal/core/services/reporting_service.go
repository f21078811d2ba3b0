package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
)

// reportingService serves the derived views: receivables, payables and the
// aggregated cashflow report.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	cashbookRepo  portsrepo.CashbookReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, cashbookRepo portsrepo.CashbookReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		cashbookRepo:  cashbookRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ListReceivables returns sales with money still owed by customers.
func (s *reportingService) ListReceivables(ctx context.Context) ([]domain.SaleRecord, error) {
	sales, err := s.reportingRepo.ListReceivables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivables: %w", err)
	}
	return sales, nil
}

// ListPayables returns purchases with money still owed to suppliers.
func (s *reportingService) ListPayables(ctx context.Context) ([]domain.PurchaseRecord, error) {
	purchases, err := s.reportingRepo.ListPayables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	return purchases, nil
}

// CashflowReport aggregates the cash ledger between from and to (inclusive)
// into per-category totals and an overall in/out/net summary.
func (s *reportingService) CashflowReport(ctx context.Context, from, to time.Time) (*domain.CashflowSummary, error) {
	byCategory, err := s.cashbookRepo.SummarizeByCategory(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize cash entries: %w", err)
	}

	summary := domain.CashflowSummary{
		TotalIn:    decimal.Zero,
		TotalOut:   decimal.Zero,
		ByCategory: byCategory,
	}
	for _, ct := range byCategory {
		switch ct.Direction {
		case domain.CashIn:
			summary.TotalIn = summary.TotalIn.Add(ct.Total)
		case domain.CashOut:
			summary.TotalOut = summary.TotalOut.Add(ct.Total)
		}
	}
	summary.Net = summary.TotalIn.Sub(summary.TotalOut)

	return &summary, nil
}
