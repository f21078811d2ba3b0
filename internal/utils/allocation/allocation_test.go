package allocation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokosakti/pos_ledger_app/internal/utils/allocation"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		name           string
		outstanding    int64
		refund         int64
		wantCutDebt    int64
		wantCashRefund int64
	}{
		{"refund fully absorbed by debt", 30000, 30000, 30000, 0},
		{"refund exceeds debt", 30000, 45000, 30000, 15000},
		{"refund below debt", 30000, 10000, 10000, 0},
		{"no outstanding debt", 0, 45000, 0, 45000},
		{"zero refund", 30000, 0, 0, 0},
		{"zero both", 0, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cutDebt, cashRefund, err := allocation.Split(d(tc.outstanding), d(tc.refund))
			require.NoError(t, err)
			assert.True(t, d(tc.wantCutDebt).Equal(cutDebt), "cutDebt: want %d got %s", tc.wantCutDebt, cutDebt)
			assert.True(t, d(tc.wantCashRefund).Equal(cashRefund), "cashRefund: want %d got %s", tc.wantCashRefund, cashRefund)
		})
	}
}

func TestSplitRejectsNegativeInputs(t *testing.T) {
	_, _, err := allocation.Split(d(-1), d(100))
	assert.Error(t, err)

	_, _, err = allocation.Split(d(100), d(-1))
	assert.Error(t, err)
}

// The split must always partition the refund exactly and never cut more than
// the outstanding balance.
func TestSplitProperties(t *testing.T) {
	values := []int64{0, 1, 99, 5000, 30000, 45000, 50000, 123457}

	for _, outstanding := range values {
		for _, refund := range values {
			cutDebt, cashRefund, err := allocation.Split(d(outstanding), d(refund))
			require.NoError(t, err)

			assert.True(t, cutDebt.Add(cashRefund).Equal(d(refund)),
				"cutDebt+cashRefund != refund for outstanding=%d refund=%d", outstanding, refund)
			assert.True(t, cutDebt.LessThanOrEqual(d(outstanding)),
				"cutDebt > outstanding for outstanding=%d refund=%d", outstanding, refund)
			assert.False(t, cutDebt.IsNegative())
			assert.False(t, cashRefund.IsNegative())
		}
	}
}
