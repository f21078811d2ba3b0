package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind distinguishes originating records from their return counterparts.
type RecordKind string

const (
	KindSale     RecordKind = "SALE"
	KindPurchase RecordKind = "PURCHASE"
	KindReturn   RecordKind = "RETURN"
)

// LineItem is a single product line on a sale or purchase record.
// UnitPrice is the final price per unit after any discount; UnitCost is the
// acquisition cost used for margin reporting.
type LineItem struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	UnitCost    decimal.Decimal `json:"unitCost"`
}

// Subtotal returns quantity x unit price for the line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// PaymentEntry is one row of a record's payment history. Every entry carries a
// stable id so that later reversals (cascade delete of a return) can reference
// it directly instead of fuzzy-matching on note text and timestamps.
type PaymentEntry struct {
	PaymentID string          `json:"paymentID"`
	PaidAt    time.Time       `json:"paidAt"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	BankID    *string         `json:"bankID,omitempty"`
	Note      string          `json:"note"`
	CreatedBy string          `json:"createdBy"`
}

// SaleRecord is a customer-side transaction: either an originating SALE or a
// RETURN posted against one. Amounts are signed: RETURN records carry negative
// totalAmount and amountPaid.
type SaleRecord struct {
	SaleID           string          `json:"saleID"`
	Kind             RecordKind      `json:"kind"`
	OriginalSaleID   *string         `json:"originalSaleID,omitempty"` // set iff Kind == RETURN
	SaleDate         time.Time       `json:"saleDate"`
	Items            []LineItem      `json:"items"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	AmountPaid       decimal.Decimal `json:"amountPaid"`
	Change           decimal.Decimal `json:"change"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod"`
	BankID           *string         `json:"bankID,omitempty"`
	PaymentHistory   []PaymentEntry  `json:"paymentHistory"`
	IsReturned       bool            `json:"isReturned"`
	CustomerName     string          `json:"customerName"`
	CashierID        string          `json:"cashierID"`
	Note             string          `json:"note"`
	DebtCutPaymentID *string         `json:"debtCutPaymentID,omitempty"` // on RETURN records: the parent payment entry this return created
	AuditFields
}

// Outstanding returns the unpaid remainder of the record, floored at zero.
// Overpaid sales (change given) are considered fully settled.
func (s *SaleRecord) Outstanding() decimal.Decimal {
	out := s.TotalAmount.Sub(s.AmountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}
