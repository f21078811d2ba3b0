package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// PaymentMethod indicates how money changed hands for a record or cash entry.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "CASH"
	MethodTransfer PaymentMethod = "TRANSFER"
)

// PaymentStatus is derived from amountPaid vs totalAmount; it is never set directly.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusPartial PaymentStatus = "PARTIAL"
	StatusUnpaid  PaymentStatus = "UNPAID"
)

// DerivePaymentStatus computes the payment status from a record's total and paid
// amounts. Comparison is on absolute values so that RETURN records, which carry
// negative totals, derive correctly.
func DerivePaymentStatus(totalAmount, amountPaid decimal.Decimal) PaymentStatus {
	total := totalAmount.Abs()
	paid := amountPaid.Abs()

	if paid.GreaterThanOrEqual(total) {
		return StatusPaid
	}
	if paid.IsPositive() {
		return StatusPartial
	}
	return StatusUnpaid
}
