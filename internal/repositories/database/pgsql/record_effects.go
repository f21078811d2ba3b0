package pgsql

import (
	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// itemQuantity is one line of a record as read back during deletion.
type itemQuantity struct {
	ProductID string
	Quantity  int64
}

// saleDeletionStockSign gives the multiplier applied to a sale-side record's
// item quantities when the record is deleted. Deleting a SALE puts the sold
// units back on the shelf; deleting a RETURN takes the refunded units off
// again.
func saleDeletionStockSign(kind domain.RecordKind) int64 {
	if kind == domain.KindReturn {
		return -1
	}
	return 1
}

// purchaseDeletionStockSign mirrors saleDeletionStockSign on the supplier
// side: deleting a PURCHASE removes the bought units, deleting a purchase
// RETURN adds the handed-back units again.
func purchaseDeletionStockSign(kind domain.RecordKind) int64 {
	if kind == domain.KindReturn {
		return 1
	}
	return -1
}

// accumulateStockReversal folds a deleted record's lines into the running
// stock deltas with the given sign.
func accumulateStockReversal(deltas map[string]int64, items []itemQuantity, sign int64) {
	for _, it := range items {
		deltas[it.ProductID] += sign * it.Quantity
	}
}

// appliedPaymentState computes a record's paid amount and status after a
// repayment lands. ok is false when the payment would push the paid amount
// past the total.
func appliedPaymentState(amountPaid, totalAmount, payment decimal.Decimal) (decimal.Decimal, domain.PaymentStatus, bool) {
	newPaid := amountPaid.Add(payment)
	if newPaid.GreaterThan(totalAmount) {
		return amountPaid, domain.DerivePaymentStatus(totalAmount, amountPaid), false
	}
	return newPaid, domain.DerivePaymentStatus(totalAmount, newPaid), true
}

// restoredPaymentState computes the parent's paid amount and status after the
// debt-cut payment of a deleted return is taken back off it.
func restoredPaymentState(amountPaid, totalAmount, restored decimal.Decimal) (decimal.Decimal, domain.PaymentStatus) {
	newPaid := amountPaid.Sub(restored)
	return newPaid, domain.DerivePaymentStatus(totalAmount, newPaid)
}
