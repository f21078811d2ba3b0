package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the DB row model for the purchases table.
type Purchase struct {
	PurchaseID         string          `db:"purchase_id"`
	Kind               string          `db:"kind"`
	OriginalPurchaseID *string         `db:"original_purchase_id"`
	PurchaseDate       time.Time       `db:"purchase_date"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	AmountPaid         decimal.Decimal `db:"amount_paid"`
	PaymentStatus      string          `db:"payment_status"`
	PaymentMethod      string          `db:"payment_method"`
	BankID             *string         `db:"bank_id"`
	IsReturned         bool            `db:"is_returned"`
	SupplierName       string          `db:"supplier_name"`
	Note               string          `db:"note"`
	DebtCutPaymentID   *string         `db:"debt_cut_payment_id"`
	AuditFields
}

// PurchaseItem is the DB row model for the purchase_items table.
type PurchaseItem struct {
	PurchaseID  string          `db:"purchase_id"`
	LineNo      int             `db:"line_no"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
}

// PurchasePayment is the DB row model for the purchase_payments table.
type PurchasePayment struct {
	PaymentID  string          `db:"payment_id"`
	PurchaseID string          `db:"purchase_id"`
	PaidAt     time.Time       `db:"paid_at"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	BankID     *string         `db:"bank_id"`
	Note       string          `db:"note"`
	CreatedBy  string          `db:"created_by"`
}
