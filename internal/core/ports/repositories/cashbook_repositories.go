package repositories

import (
	"context"
	"time"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// CashbookReader defines read operations for the cash ledger.
type CashbookReader interface {
	// FindEntryByID retrieves a single cash entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error)

	// ListEntries retrieves a paginated list of cash entries, newest first.
	// direction filters to IN or OUT when non-nil.
	ListEntries(ctx context.Context, limit int, nextToken *string, direction *domain.CashDirection) ([]domain.CashEntry, *string, error)

	// SummarizeByCategory aggregates entries between from and to (inclusive)
	// into per-category totals.
	SummarizeByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error)
}

// CashbookWriter defines write operations for free-standing manual cash
// entries. System-generated entries are only written and deleted inside the
// posting transactions of the sale/purchase repositories.
type CashbookWriter interface {
	CreateEntry(ctx context.Context, entry domain.CashEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

// CashbookRepositoryFacade combines the cashbook repository interfaces.
type CashbookRepositoryFacade interface {
	CashbookReader
	CashbookWriter
}
