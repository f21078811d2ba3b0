package mapping

import (
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/models"
)

// ToModelProduct converts a domain Product to its row model.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		SKU:         d.SKU,
		Name:        d.Name,
		Category:    d.Category,
		UnitPrice:   d.UnitPrice,
		UnitCost:    d.UnitCost,
		Stock:       d.Stock,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a row model to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		SKU:         m.SKU,
		Name:        m.Name,
		Category:    m.Category,
		UnitPrice:   m.UnitPrice,
		UnitCost:    m.UnitCost,
		Stock:       m.Stock,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
