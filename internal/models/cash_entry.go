package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashEntry is the DB row model for the cash_entries table.
type CashEntry struct {
	EntryID       string          `db:"entry_id"`
	EntryDate     time.Time       `db:"entry_date"`
	Direction     string          `db:"direction"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	BankID        *string         `db:"bank_id"`
	ReferenceID   *string         `db:"reference_id"`
	UserID        string          `db:"user_id"`
	UserName      string          `db:"user_name"`
	AuditFields
}
