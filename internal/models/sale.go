package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the DB row model for the sales table.
type Sale struct {
	SaleID           string          `db:"sale_id"`
	Kind             string          `db:"kind"`
	OriginalSaleID   *string         `db:"original_sale_id"`
	SaleDate         time.Time       `db:"sale_date"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	AmountPaid       decimal.Decimal `db:"amount_paid"`
	ChangeGiven      decimal.Decimal `db:"change_given"`
	PaymentStatus    string          `db:"payment_status"`
	PaymentMethod    string          `db:"payment_method"`
	BankID           *string         `db:"bank_id"`
	IsReturned       bool            `db:"is_returned"`
	CustomerName     string          `db:"customer_name"`
	CashierID        string          `db:"cashier_id"`
	Note             string          `db:"note"`
	DebtCutPaymentID *string         `db:"debt_cut_payment_id"`
	AuditFields
}

// SaleItem is the DB row model for the sale_items table.
type SaleItem struct {
	SaleID      string          `db:"sale_id"`
	LineNo      int             `db:"line_no"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
}

// SalePayment is the DB row model for the sale_payments table.
type SalePayment struct {
	PaymentID string          `db:"payment_id"`
	SaleID    string          `db:"sale_id"`
	PaidAt    time.Time       `db:"paid_at"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	BankID    *string         `db:"bank_id"`
	Note      string          `db:"note"`
	CreatedBy string          `db:"created_by"`
}
