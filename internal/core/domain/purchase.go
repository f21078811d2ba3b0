package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord is the supplier-side counterpart of SaleRecord: an originating
// PURCHASE or a RETURN posted against one. Same sign convention: RETURN records
// carry negative totalAmount and amountPaid.
type PurchaseRecord struct {
	PurchaseID         string          `json:"purchaseID"`
	Kind               RecordKind      `json:"kind"`
	OriginalPurchaseID *string         `json:"originalPurchaseID,omitempty"` // set iff Kind == RETURN
	PurchaseDate       time.Time       `json:"purchaseDate"`
	Items              []LineItem      `json:"items"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	AmountPaid         decimal.Decimal `json:"amountPaid"`
	PaymentStatus      PaymentStatus   `json:"paymentStatus"`
	PaymentMethod      PaymentMethod   `json:"paymentMethod"`
	BankID             *string         `json:"bankID,omitempty"`
	PaymentHistory     []PaymentEntry  `json:"paymentHistory"`
	IsReturned         bool            `json:"isReturned"`
	SupplierName       string          `json:"supplierName"`
	Note               string          `json:"note"`
	DebtCutPaymentID   *string         `json:"debtCutPaymentID,omitempty"`
	AuditFields
}

// Outstanding returns the unpaid remainder owed to the supplier, floored at zero.
func (p *PurchaseRecord) Outstanding() decimal.Decimal {
	out := p.TotalAmount.Sub(p.AmountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}
