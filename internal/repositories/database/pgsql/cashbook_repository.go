package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	"github.com/tokosakti/pos_ledger_app/internal/models"
	"github.com/tokosakti/pos_ledger_app/internal/utils/mapping"
	"github.com/tokosakti/pos_ledger_app/internal/utils/pagination"
)

type PgxCashbookRepository struct {
	BaseRepository
}

// newPgxCashbookRepository creates a new repository for the cash ledger.
func newPgxCashbookRepository(pool *pgxpool.Pool) portsrepo.CashbookRepositoryFacade {
	return &PgxCashbookRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCashbookRepository implements portsrepo.CashbookRepositoryFacade
var _ portsrepo.CashbookRepositoryFacade = (*PgxCashbookRepository)(nil)

const cashEntryColumns = `entry_id, entry_date, direction, amount, category, description,
		payment_method, bank_id, reference_id, user_id, user_name,
		created_at, created_by, last_updated_at, last_updated_by`

func scanCashEntry(row pgx.Row) (models.CashEntry, error) {
	var m models.CashEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Direction,
		&m.Amount,
		&m.Category,
		&m.Description,
		&m.PaymentMethod,
		&m.BankID,
		&m.ReferenceID,
		&m.UserID,
		&m.UserName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves a single cash entry.
func (r *PgxCashbookRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.CashEntry, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+cashEntryColumns+` FROM cash_entries WHERE entry_id = $1;`, entryID)
	m, err := scanCashEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("cash entry " + entryID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find cash entry "+entryID, err)
	}
	entry := mapping.ToDomainCashEntry(m)
	return &entry, nil
}

// ListEntries retrieves a paginated list of cash entries, newest first.
// direction filters to IN or OUT when non-nil.
func (r *PgxCashbookRepository) ListEntries(ctx context.Context, limit int, nextToken *string, direction *domain.CashDirection) ([]domain.CashEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + cashEntryColumns + ` FROM cash_entries`
	orderByClause := `ORDER BY entry_date DESC, created_at DESC`

	clauses := []string{}
	args := []interface{}{}

	if direction != nil {
		args = append(args, string(*direction))
		clauses = append(clauses, `direction = $`+strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastEntryDate, lastCreatedAt)
		clauses = append(clauses, `(entry_date, created_at) < ($`+strconv.Itoa(len(args)-1)+`, $`+strconv.Itoa(len(args))+`)`)
	}

	query := baseQuery
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query cash entries", err)
	}
	defer rows.Close()

	entries := make([]models.CashEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanCashEntry(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan cash entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating cash entry rows", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	results := make([]domain.CashEntry, len(entries))
	for i, m := range entries {
		results[i] = mapping.ToDomainCashEntry(m)
	}
	return results, nextTokenVal, nil
}

// SummarizeByCategory aggregates entries between from and to (inclusive) into
// per-category totals.
func (r *PgxCashbookRepository) SummarizeByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryTotal, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT category, direction, COALESCE(SUM(amount), 0)
		FROM cash_entries
		WHERE entry_date >= $1 AND entry_date <= $2
		GROUP BY category, direction
		ORDER BY category, direction;
	`, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to summarize cash entries", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var ct domain.CategoryTotal
		var direction string
		if err := rows.Scan(&ct.Category, &direction, &ct.Total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash summary row", err)
		}
		ct.Direction = domain.CashDirection(direction)
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash summary rows", err)
	}
	return totals, nil
}

// CreateEntry inserts a free-standing manual cash entry.
func (r *PgxCashbookRepository) CreateEntry(ctx context.Context, entry domain.CashEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertCashEntryInTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// DeleteEntry removes a cash entry by id.
func (r *PgxCashbookRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cash_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete cash entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cash entry " + entryID + " not found")
	}
	return nil
}
