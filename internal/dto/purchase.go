package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// PurchaseItemRequest is one line of a purchase draft. UnitCost is the price
// paid to the supplier per unit.
type PurchaseItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"required,gt=0"`
}

// CreatePurchaseRequest is the draft for posting a stock purchase.
type CreatePurchaseRequest struct {
	Date          *time.Time            `json:"date,omitempty"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	AmountPaid    decimal.Decimal       `json:"amountPaid" binding:"gte=0"`
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER"`
	BankID        *string               `json:"bankID,omitempty"`
	SupplierName  string                `json:"supplierName" binding:"required"`
	Note          string                `json:"note"`
	SkipCashFlow  bool                  `json:"skipCashFlow"`
}

// PurchaseResponse is the API representation of a purchase record.
type PurchaseResponse struct {
	PurchaseID         string                `json:"purchaseID"`
	Kind               domain.RecordKind     `json:"kind"`
	OriginalPurchaseID *string               `json:"originalPurchaseID,omitempty"`
	PurchaseDate       time.Time             `json:"purchaseDate"`
	Items              []domain.LineItem     `json:"items"`
	TotalAmount        decimal.Decimal       `json:"totalAmount"`
	AmountPaid         decimal.Decimal       `json:"amountPaid"`
	Outstanding        decimal.Decimal       `json:"outstanding"`
	PaymentStatus      domain.PaymentStatus  `json:"paymentStatus"`
	PaymentMethod      domain.PaymentMethod  `json:"paymentMethod"`
	BankID             *string               `json:"bankID,omitempty"`
	PaymentHistory     []domain.PaymentEntry `json:"paymentHistory"`
	IsReturned         bool                  `json:"isReturned"`
	SupplierName       string                `json:"supplierName"`
	Note               string                `json:"note"`
	CreatedAt          time.Time             `json:"createdAt"`
}

// ToPurchaseResponse converts a domain purchase record to its API representation.
func ToPurchaseResponse(p *domain.PurchaseRecord) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:         p.PurchaseID,
		Kind:               p.Kind,
		OriginalPurchaseID: p.OriginalPurchaseID,
		PurchaseDate:       p.PurchaseDate,
		Items:              p.Items,
		TotalAmount:        p.TotalAmount,
		AmountPaid:         p.AmountPaid,
		Outstanding:        p.Outstanding(),
		PaymentStatus:      p.PaymentStatus,
		PaymentMethod:      p.PaymentMethod,
		BankID:             p.BankID,
		PaymentHistory:     p.PaymentHistory,
		IsReturned:         p.IsReturned,
		SupplierName:       p.SupplierName,
		Note:               p.Note,
		CreatedAt:          p.CreatedAt,
	}
}

// ListPurchasesParams carries pagination parameters for listing purchases.
type ListPurchasesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListPurchasesResponse is a page of purchase records.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// PurchaseReturnsResponse is the set of RETURN records posted against one
// purchase.
type PurchaseReturnsResponse struct {
	Returns []PurchaseResponse `json:"returns"`
}
