package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/utils/mapping"
)

// pgxQuerier is the read surface shared by *pgxpool.Pool and pgx.Tx, so the
// same row readers can run against the pool or inside a transaction.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// applyStockDeltasInTx adjusts product stock inside a posting transaction.
// Products missing from the catalog are silently skipped: historical records
// may reference products that were deleted since.
func applyStockDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]int64, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock = stock + $1, last_updated_at = $2, last_updated_by = $3
		WHERE product_id = $4;
	`
	for productID, delta := range deltas {
		if delta == 0 {
			continue
		}
		if _, err := tx.Exec(ctx, query, delta, now, userID, productID); err != nil {
			return apperrors.NewAppError(500, "failed to adjust stock for product "+productID, err)
		}
	}
	return nil
}

// insertCashEntryInTx writes one cash ledger row inside a posting transaction.
func insertCashEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.CashEntry) error {
	m := mapping.ToModelCashEntry(entry)
	query := `
		INSERT INTO cash_entries (
			entry_id, entry_date, direction, amount, category, description,
			payment_method, bank_id, reference_id, user_id, user_name,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Direction,
		m.Amount,
		m.Category,
		m.Description,
		m.PaymentMethod,
		m.BankID,
		m.ReferenceID,
		m.UserID,
		m.UserName,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash entry "+m.EntryID, err)
	}
	return nil
}

// deleteCashEntriesByReferenceInTx removes every system-generated cash entry
// that references the given record.
func deleteCashEntriesByReferenceInTx(ctx context.Context, tx pgx.Tx, referenceID string) error {
	query := `DELETE FROM cash_entries WHERE reference_id = $1;`
	if _, err := tx.Exec(ctx, query, referenceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete cash entries referencing "+referenceID, err)
	}
	return nil
}

func timeNow() time.Time {
	return time.Now().UTC()
}

// isUniqueViolation reports whether err is a Postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// paymentStatusCase is the SQL expression that recomputes payment_status after
// amount_paid moves by $1. Return records are settled on insert and never pass
// through here, so the plain signed comparison is enough.
const paymentStatusCase = `CASE
			WHEN amount_paid + $1 >= total_amount THEN 'PAID'
			WHEN amount_paid + $1 > 0 THEN 'PARTIAL'
			ELSE 'UNPAID'
		END`
