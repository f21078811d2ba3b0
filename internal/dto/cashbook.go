package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// CreateCashEntryRequest records a free-standing manual cash movement.
type CreateCashEntryRequest struct {
	Date          *time.Time           `json:"date,omitempty"`
	Direction     domain.CashDirection `json:"direction" binding:"required,oneof=IN OUT"`
	Amount        decimal.Decimal      `json:"amount" binding:"required,gt=0"`
	Category      string               `json:"category" binding:"required"`
	Description   string               `json:"description"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER"`
	BankID        *string              `json:"bankID,omitempty"`
}

// CashEntryResponse is the API representation of a cash ledger row.
type CashEntryResponse struct {
	EntryID     string               `json:"entryID"`
	EntryDate   time.Time            `json:"entryDate"`
	Direction   domain.CashDirection `json:"direction"`
	Amount      decimal.Decimal      `json:"amount"`
	Category    string               `json:"category"`
	Description string               `json:"description"`
	Method      domain.PaymentMethod `json:"method"`
	BankID      *string              `json:"bankID,omitempty"`
	ReferenceID *string              `json:"referenceID,omitempty"`
	UserID      string               `json:"userID"`
	UserName    string               `json:"userName"`
	System      bool                 `json:"system"`
}

// ToCashEntryResponse converts a domain cash entry to its API representation.
func ToCashEntryResponse(e *domain.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		EntryID:     e.EntryID,
		EntryDate:   e.EntryDate,
		Direction:   e.Direction,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Method:      e.Method,
		BankID:      e.BankID,
		ReferenceID: e.ReferenceID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		System:      e.IsSystemGenerated(),
	}
}

// ListCashEntriesParams carries pagination and filter parameters for the cashbook.
type ListCashEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
	Direction *string `form:"direction"`
}

// ListCashEntriesResponse is a page of cash ledger rows.
type ListCashEntriesResponse struct {
	Entries   []CashEntryResponse `json:"entries"`
	NextToken *string             `json:"nextToken,omitempty"`
}
