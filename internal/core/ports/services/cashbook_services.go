package services

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
)

// CashbookSvcFacade manages free-standing manual cash entries and reads of
// the cash ledger. System-generated entries are written and removed only by
// the posters.
type CashbookSvcFacade interface {
	CreateManualEntry(ctx context.Context, req dto.CreateCashEntryRequest, userID string) (*domain.CashEntry, error)

	// DeleteManualEntry removes a manual entry. Deleting a system-generated
	// entry is rejected: its financial effect can only be reversed by deleting
	// the referenced record.
	DeleteManualEntry(ctx context.Context, entryID string) error

	GetEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error)

	ListEntries(ctx context.Context, params dto.ListCashEntriesParams) (*dto.ListCashEntriesResponse, error)
}
