package domain

import "github.com/shopspring/decimal"

// Product is a catalog item with its current stock on hand. Stock is only ever
// mutated as an atomic step of a sale/purchase/return posting or its reversal.
type Product struct {
	ProductID string          `json:"productID"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Stock     int64           `json:"stock"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}
