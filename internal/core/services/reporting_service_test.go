package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	"github.com/tokosakti/pos_ledger_app/internal/core/services"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) ListReceivables(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

func (m *MockReportingRepository) ListPayables(ctx context.Context) ([]domain.PurchaseRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseRecord), args.Error(1)
}

func TestCashflowReport_SumsDirections(t *testing.T) {
	ctx := context.Background()
	mockReportingRepo := new(MockReportingRepository)
	mockCashbookRepo := new(MockCashbookRepository)
	service := services.NewReportingService(mockReportingRepo, mockCashbookRepo)

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	mockCashbookRepo.On("SummarizeByCategory", ctx, from, to).Return([]domain.CategoryTotal{
		{Category: domain.CategorySale, Direction: domain.CashIn, Total: decimal.NewFromInt(500000)},
		{Category: domain.CategoryReceivableSettlement, Direction: domain.CashIn, Total: decimal.NewFromInt(120000)},
		{Category: domain.CategoryPurchase, Direction: domain.CashOut, Total: decimal.NewFromInt(300000)},
		{Category: "Listrik", Direction: domain.CashOut, Total: decimal.NewFromInt(50000)},
	}, nil).Once()

	summary, err := service.CashflowReport(ctx, from, to)

	require.NoError(t, err)
	assert.True(t, summary.TotalIn.Equal(decimal.NewFromInt(620000)))
	assert.True(t, summary.TotalOut.Equal(decimal.NewFromInt(350000)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(270000)))
	assert.Len(t, summary.ByCategory, 4)
	mockCashbookRepo.AssertExpectations(t)
}

func TestCashflowReport_EmptyLedger(t *testing.T) {
	ctx := context.Background()
	mockReportingRepo := new(MockReportingRepository)
	mockCashbookRepo := new(MockCashbookRepository)
	service := services.NewReportingService(mockReportingRepo, mockCashbookRepo)

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	mockCashbookRepo.On("SummarizeByCategory", ctx, from, to).Return([]domain.CategoryTotal{}, nil).Once()

	summary, err := service.CashflowReport(ctx, from, to)

	require.NoError(t, err)
	assert.True(t, summary.TotalIn.IsZero())
	assert.True(t, summary.TotalOut.IsZero())
	assert.True(t, summary.Net.IsZero())
}
