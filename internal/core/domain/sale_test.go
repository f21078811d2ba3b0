package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

func TestDerivePaymentStatus(t *testing.T) {
	testCases := []struct {
		name  string
		total int64
		paid  int64
		want  domain.PaymentStatus
	}{
		{"fully paid", 100000, 100000, domain.StatusPaid},
		{"overpaid with change", 100000, 120000, domain.StatusPaid},
		{"partially paid", 50000, 20000, domain.StatusPartial},
		{"unpaid", 50000, 0, domain.StatusUnpaid},
		{"zero total", 0, 0, domain.StatusPaid},
		{"return record fully settled", -45000, -45000, domain.StatusPaid},
		{"return record unsettled", -45000, 0, domain.StatusUnpaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.DerivePaymentStatus(decimal.NewFromInt(tc.total), decimal.NewFromInt(tc.paid))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSaleOutstanding(t *testing.T) {
	sale := domain.SaleRecord{
		TotalAmount: decimal.NewFromInt(50000),
		AmountPaid:  decimal.NewFromInt(20000),
	}
	assert.True(t, decimal.NewFromInt(30000).Equal(sale.Outstanding()))

	// Overpaid sale (change given) has nothing outstanding.
	sale.AmountPaid = decimal.NewFromInt(120000)
	assert.True(t, sale.Outstanding().IsZero())
}

func TestLineItemSubtotal(t *testing.T) {
	li := domain.LineItem{Quantity: 3, UnitPrice: decimal.NewFromInt(15000)}
	assert.True(t, decimal.NewFromInt(45000).Equal(li.Subtotal()))
}

func TestIsSystemCategory(t *testing.T) {
	assert.True(t, domain.IsSystemCategory(domain.CategorySale))
	assert.True(t, domain.IsSystemCategory(domain.CategoryPayableSettlement))
	assert.False(t, domain.IsSystemCategory("Setoran Modal"))
}
