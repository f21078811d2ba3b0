package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashDirection indicates whether money entered or left the till.
type CashDirection string

const (
	CashIn  CashDirection = "IN"
	CashOut CashDirection = "OUT"
)

// System-generated cash entry categories. The category column itself stays a
// free string so users can record their own manual categories, but entries the
// engine writes always use one of these.
const (
	CategorySale                 = "Penjualan"
	CategorySaleReturn           = "Retur Penjualan"
	CategoryReceivableSettlement = "Pelunasan Piutang"
	CategoryPurchase             = "Pembelian Stok"
	CategoryPurchaseReturn       = "Retur Pembelian"
	CategoryPayableSettlement    = "Pelunasan Utang Supplier"
)

var systemCategories = map[string]struct{}{
	CategorySale:                 {},
	CategorySaleReturn:           {},
	CategoryReceivableSettlement: {},
	CategoryPurchase:             {},
	CategoryPurchaseReturn:       {},
	CategoryPayableSettlement:    {},
}

// IsSystemCategory reports whether category belongs to the closed set the
// engine generates.
func IsSystemCategory(category string) bool {
	_, ok := systemCategories[category]
	return ok
}

// CashEntry is one row of the append-only cash ledger. Amount is always
// non-negative; Direction carries the sign. A non-empty ReferenceID marks the
// entry as system-generated from a sale or purchase record, and such entries
// are only ever removed by the cascade delete of their referenced record.
type CashEntry struct {
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"`
	Direction   CashDirection   `json:"direction"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Method      PaymentMethod   `json:"method"`
	BankID      *string         `json:"bankID,omitempty"`
	ReferenceID *string         `json:"referenceID,omitempty"`
	UserID      string          `json:"userID"`
	UserName    string          `json:"userName"`
	AuditFields
}

// IsSystemGenerated reports whether the entry was written by a poster as a
// side effect of a record, as opposed to a free-standing manual entry.
func (e *CashEntry) IsSystemGenerated() bool {
	return e.ReferenceID != nil && *e.ReferenceID != ""
}
