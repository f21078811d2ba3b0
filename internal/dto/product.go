package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// CreateProductRequest adds a catalog item.
type CreateProductRequest struct {
	SKU          string          `json:"sku" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	UnitPrice    decimal.Decimal `json:"unitPrice" binding:"required,gt=0"`
	UnitCost     decimal.Decimal `json:"unitCost" binding:"gte=0"`
	InitialStock int64           `json:"initialStock" binding:"gte=0"`
}

// UpdateProductRequest changes catalog fields. Stock is deliberately absent:
// it only moves through postings.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	Category  *string          `json:"category,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	UnitCost  *decimal.Decimal `json:"unitCost,omitempty"`
	IsActive  *bool            `json:"isActive,omitempty"`
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Stock     int64           `json:"stock"`
	IsActive  bool            `json:"isActive"`
}

// ToProductResponse converts a domain product to its API representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.UnitPrice,
		UnitCost:  p.UnitCost,
		Stock:     p.Stock,
		IsActive:  p.IsActive,
	}
}
