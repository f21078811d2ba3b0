package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Split divides a return's refund value between the record's outstanding debt
// and a cash payout. Debt is always satisfied before any cash changes hands:
// cutDebt = min(refund, outstanding), cashRefund = refund - cutDebt.
// Both inputs must be non-negative. The same split applies to sales-side
// refunds (money owed to the business) and purchase-side refunds (money owed
// by the business).
func Split(outstanding, refund decimal.Decimal) (cutDebt, cashRefund decimal.Decimal, err error) {
	if outstanding.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("outstanding must not be negative, got %s", outstanding.String())
	}
	if refund.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("refund must not be negative, got %s", refund.String())
	}

	cutDebt = refund
	if outstanding.LessThan(refund) {
		cutDebt = outstanding
	}
	cashRefund = refund.Sub(cutDebt)
	return cutDebt, cashRefund, nil
}
