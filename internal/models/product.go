package models

import "github.com/shopspring/decimal"

// Product is the DB row model for the products table.
type Product struct {
	ProductID string          `db:"product_id"`
	SKU       string          `db:"sku"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	UnitCost  decimal.Decimal `db:"unit_cost"`
	Stock     int64           `db:"stock"`
	IsActive  bool            `db:"is_active"`
	AuditFields
}
