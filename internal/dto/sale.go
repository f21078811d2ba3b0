package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// SaleItemRequest is one line of a sale draft. UnitPrice overrides the catalog
// price when positive; zero means "use the catalog price".
type SaleItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"gte=0"`
}

// CreateSaleRequest is the draft for posting a sale.
type CreateSaleRequest struct {
	Date          *time.Time           `json:"date,omitempty"`
	Items         []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	AmountPaid    decimal.Decimal      `json:"amountPaid" binding:"gte=0"`
	Change        decimal.Decimal      `json:"change" binding:"gte=0"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER"`
	BankID        *string              `json:"bankID,omitempty"`
	CustomerName  string               `json:"customerName"`
	Note          string               `json:"note"`
	SkipCashFlow  bool                 `json:"skipCashFlow"`
}

// ReturnItemRequest selects a line of the original record and how many units
// come back.
type ReturnItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateReturnRequest is the draft for posting a return against an existing
// sale or purchase.
type CreateReturnRequest struct {
	Items         []ReturnItemRequest  `json:"items" binding:"required,min=1,dive"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER"`
	BankID        *string              `json:"bankID,omitempty"`
	Note          string               `json:"note"`
}

// CreateRepaymentRequest settles part or all of an outstanding balance.
type CreateRepaymentRequest struct {
	Amount        decimal.Decimal      `json:"amount" binding:"required,gt=0"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER"`
	BankID        *string              `json:"bankID,omitempty"`
	Note          string               `json:"note"`
}

// SaleResponse is the API representation of a sale record.
type SaleResponse struct {
	SaleID         string                `json:"saleID"`
	Kind           domain.RecordKind     `json:"kind"`
	OriginalSaleID *string               `json:"originalSaleID,omitempty"`
	SaleDate       time.Time             `json:"saleDate"`
	Items          []domain.LineItem     `json:"items"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	AmountPaid     decimal.Decimal       `json:"amountPaid"`
	Change         decimal.Decimal       `json:"change"`
	Outstanding    decimal.Decimal       `json:"outstanding"`
	PaymentStatus  domain.PaymentStatus  `json:"paymentStatus"`
	PaymentMethod  domain.PaymentMethod  `json:"paymentMethod"`
	BankID         *string               `json:"bankID,omitempty"`
	PaymentHistory []domain.PaymentEntry `json:"paymentHistory"`
	IsReturned     bool                  `json:"isReturned"`
	CustomerName   string                `json:"customerName"`
	CashierID      string                `json:"cashierID"`
	Note           string                `json:"note"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToSaleResponse converts a domain sale record to its API representation.
func ToSaleResponse(s *domain.SaleRecord) SaleResponse {
	return SaleResponse{
		SaleID:         s.SaleID,
		Kind:           s.Kind,
		OriginalSaleID: s.OriginalSaleID,
		SaleDate:       s.SaleDate,
		Items:          s.Items,
		TotalAmount:    s.TotalAmount,
		AmountPaid:     s.AmountPaid,
		Change:         s.Change,
		Outstanding:    s.Outstanding(),
		PaymentStatus:  s.PaymentStatus,
		PaymentMethod:  s.PaymentMethod,
		BankID:         s.BankID,
		PaymentHistory: s.PaymentHistory,
		IsReturned:     s.IsReturned,
		CustomerName:   s.CustomerName,
		CashierID:      s.CashierID,
		Note:           s.Note,
		CreatedAt:      s.CreatedAt,
	}
}

// ListSalesParams carries pagination parameters for listing sales.
type ListSalesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListSalesResponse is a page of sale records.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// SaleReturnsResponse is the set of RETURN records posted against one sale.
type SaleReturnsResponse struct {
	Returns []SaleResponse `json:"returns"`
}

// OutstandingResponse reports the unpaid remainder of a record.
type OutstandingResponse struct {
	RecordID    string          `json:"recordID"`
	Outstanding decimal.Decimal `json:"outstanding"`
}
