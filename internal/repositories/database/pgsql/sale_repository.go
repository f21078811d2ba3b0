package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	"github.com/tokosakti/pos_ledger_app/internal/models"
	"github.com/tokosakti/pos_ledger_app/internal/utils/mapping"
	"github.com/tokosakti/pos_ledger_app/internal/utils/pagination"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale records and their postings.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryWithTx
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, kind, original_sale_id, sale_date, total_amount, amount_paid, change_given,
		payment_status, payment_method, bank_id, is_returned, customer_name, cashier_id, note, debt_cut_payment_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(
		&m.SaleID,
		&m.Kind,
		&m.OriginalSaleID,
		&m.SaleDate,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.ChangeGiven,
		&m.PaymentStatus,
		&m.PaymentMethod,
		&m.BankID,
		&m.IsReturned,
		&m.CustomerName,
		&m.CashierID,
		&m.Note,
		&m.DebtCutPaymentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateSale inserts the sale with its items, applies the stock deltas and
// writes the cash entry in one transaction.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale domain.SaleRecord, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertSaleInTx(ctx, tx, sale); err != nil {
		return err
	}
	if err := applyStockDeltasInTx(ctx, tx, stockDeltas, sale.CreatedBy, sale.CreatedAt); err != nil {
		return err
	}
	if cashEntry != nil {
		if err := insertCashEntryInTx(ctx, tx, *cashEntry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func insertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.SaleRecord) error {
	m := mapping.ToModelSale(sale)
	saleQuery := `
		INSERT INTO sales (
			sale_id, kind, original_sale_id, sale_date, total_amount, amount_paid, change_given,
			payment_status, payment_method, bank_id, is_returned, customer_name, cashier_id, note, debt_cut_payment_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, saleQuery,
		m.SaleID,
		m.Kind,
		m.OriginalSaleID,
		m.SaleDate,
		m.TotalAmount,
		m.AmountPaid,
		m.ChangeGiven,
		m.PaymentStatus,
		m.PaymentMethod,
		m.BankID,
		m.IsReturned,
		m.CustomerName,
		m.CashierID,
		m.Note,
		m.DebtCutPaymentID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert sale "+m.SaleID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_id, line_no, product_id, product_name, quantity, unit_price, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range mapping.ToModelSaleItems(sale.SaleID, sale.Items) {
		batch.Queue(itemQuery, item.SaleID, item.LineNo, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.UnitCost)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert sale items for "+m.SaleID, err)
	}
	return nil
}

func insertSalePaymentInTx(ctx context.Context, tx pgx.Tx, saleID string, payment domain.PaymentEntry) error {
	m := mapping.ToModelSalePayment(saleID, payment)
	query := `
		INSERT INTO sale_payments (payment_id, sale_id, paid_at, amount, method, bank_id, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query, m.PaymentID, m.SaleID, m.PaidAt, m.Amount, m.Method, m.BankID, m.Note, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment for sale "+saleID, err)
	}
	return nil
}

// CreateSaleReturn inserts the RETURN record, appends the debt-cut payment to
// the parent, updates the parent's paid amount and status, applies the stock
// deltas and writes the cash entry, all in one transaction.
func (r *PgxSaleRepository) CreateSaleReturn(ctx context.Context, ret domain.SaleRecord, debtCut *domain.PaymentEntry, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	if ret.OriginalSaleID == nil {
		return apperrors.NewAppError(400, "return record has no original sale id", apperrors.ErrValidation)
	}
	parentID := *ret.OriginalSaleID

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock the parent so concurrent returns and repayments serialize on it.
	var parentKind string
	err = tx.QueryRow(ctx, `SELECT kind FROM sales WHERE sale_id = $1 FOR UPDATE;`, parentID).Scan(&parentKind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("sale " + parentID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock sale "+parentID, err)
	}

	if err := insertSaleInTx(ctx, tx, ret); err != nil {
		return err
	}

	if debtCut != nil {
		if err := insertSalePaymentInTx(ctx, tx, parentID, *debtCut); err != nil {
			return err
		}
		// Guarded against concurrent payments that already consumed the debt.
		updateQuery := `
			UPDATE sales
			SET amount_paid = amount_paid + $1,
				payment_status = ` + paymentStatusCase + `,
				is_returned = TRUE,
				last_updated_at = $2,
				last_updated_by = $3
			WHERE sale_id = $4 AND amount_paid + $1 <= total_amount;
		`
		tag, err := tx.Exec(ctx, updateQuery, debtCut.Amount, ret.LastUpdatedAt, ret.LastUpdatedBy, parentID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to apply debt cut to sale "+parentID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewAppError(409, "debt cut exceeds the outstanding balance of sale "+parentID, apperrors.ErrConflict)
		}
	} else {
		flagQuery := `UPDATE sales SET is_returned = TRUE, last_updated_at = $1, last_updated_by = $2 WHERE sale_id = $3;`
		if _, err := tx.Exec(ctx, flagQuery, ret.LastUpdatedAt, ret.LastUpdatedBy, parentID); err != nil {
			return apperrors.NewAppError(500, "failed to flag sale "+parentID+" as returned", err)
		}
	}

	if err := applyStockDeltasInTx(ctx, tx, stockDeltas, ret.CreatedBy, ret.CreatedAt); err != nil {
		return err
	}
	if cashEntry != nil {
		if err := insertCashEntryInTx(ctx, tx, *cashEntry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// AddSaleRepayment appends a payment entry, bumps the parent's paid amount and
// status under a row lock, and writes the settlement cash entry in one
// transaction. It returns the updated record.
func (r *PgxSaleRepository) AddSaleRepayment(ctx context.Context, saleID string, payment domain.PaymentEntry, cashEntry domain.CashEntry) (*domain.SaleRecord, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	row := tx.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1 FOR UPDATE;`, saleID)
	locked, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock sale "+saleID, err)
	}

	if err := insertSalePaymentInTx(ctx, tx, saleID, payment); err != nil {
		return nil, err
	}

	// The row lock serializes concurrent payments, so the new state can be
	// computed here and written back verbatim.
	newPaid, newStatus, ok := appliedPaymentState(locked.AmountPaid, locked.TotalAmount, payment.Amount)
	if !ok {
		return nil, apperrors.NewAppError(409, "payment exceeds the outstanding balance of sale "+saleID, apperrors.ErrConflict)
	}

	updateQuery := `
		UPDATE sales
		SET amount_paid = $1, payment_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sale_id = $5
		RETURNING ` + saleColumns + `;
	`
	row = tx.QueryRow(ctx, updateQuery, newPaid, string(newStatus), payment.PaidAt, payment.CreatedBy, saleID)
	m, err := scanSale(row)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to apply repayment to sale "+saleID, err)
	}

	if err := insertCashEntryInTx(ctx, tx, cashEntry); err != nil {
		return nil, err
	}

	// The response is assembled inside the transaction; the row may already be
	// gone by the time a post-commit read would run.
	sale := mapping.ToDomainSale(m)
	if sale.Items, err = findSaleItems(ctx, tx, saleID); err != nil {
		return nil, err
	}
	if sale.PaymentHistory, err = findSalePayments(ctx, tx, saleID); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &sale, nil
}

// DeleteSaleCascade reverses and removes the record together with all its
// RETURN children, their cash entries and stock effects, and, when the target
// is itself a RETURN, restores the parent's debt, in one transaction.
func (r *PgxSaleRepository) DeleteSaleCascade(ctx context.Context, saleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var kind string
	var originalSaleID, debtCutPaymentID *string
	err = tx.QueryRow(ctx, `SELECT kind, original_sale_id, debt_cut_payment_id FROM sales WHERE sale_id = $1 FOR UPDATE;`, saleID).
		Scan(&kind, &originalSaleID, &debtCutPaymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock sale "+saleID, err)
	}

	switch domain.RecordKind(kind) {
	case domain.KindReturn:
		if err := deleteSaleReturnInTx(ctx, tx, saleID, originalSaleID, debtCutPaymentID); err != nil {
			return err
		}
	default:
		// Children first: each RETURN added stock back, so its removal subtracts.
		childRows, err := tx.Query(ctx, `SELECT sale_id, debt_cut_payment_id FROM sales WHERE original_sale_id = $1 FOR UPDATE;`, saleID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query returns of sale "+saleID, err)
		}
		type child struct {
			id               string
			debtCutPaymentID *string
		}
		children := []child{}
		for childRows.Next() {
			var c child
			if err := childRows.Scan(&c.id, &c.debtCutPaymentID); err != nil {
				childRows.Close()
				return apperrors.NewAppError(500, "failed to scan return of sale "+saleID, err)
			}
			children = append(children, c)
		}
		childRows.Close()
		if err := childRows.Err(); err != nil {
			return apperrors.NewAppError(500, "error iterating returns of sale "+saleID, err)
		}

		for _, c := range children {
			// The parent is being deleted too, so there is no debt to restore:
			// its payment rows disappear with it.
			if err := removeSaleRecordInTx(ctx, tx, c.id, saleDeletionStockSign(domain.KindReturn)); err != nil {
				return err
			}
		}
		if err := removeSaleRecordInTx(ctx, tx, saleID, saleDeletionStockSign(domain.RecordKind(kind))); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// deleteSaleReturnInTx removes a single RETURN record and restores the debt it
// cut on the parent.
func deleteSaleReturnInTx(ctx context.Context, tx pgx.Tx, returnID string, originalSaleID, debtCutPaymentID *string) error {
	if originalSaleID != nil {
		var parentKind string
		err := tx.QueryRow(ctx, `SELECT kind FROM sales WHERE sale_id = $1 FOR UPDATE;`, *originalSaleID).Scan(&parentKind)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAppError(500, "failed to lock sale "+*originalSaleID, err)
		}
		if err == nil {
			if debtCutPaymentID != nil {
				if err := restoreSaleDebtInTx(ctx, tx, *originalSaleID, *debtCutPaymentID, returnID); err != nil {
					return err
				}
			}
			// The parent stays returned only if other returns remain.
			flagQuery := `
				UPDATE sales
				SET is_returned = EXISTS (SELECT 1 FROM sales WHERE original_sale_id = $1 AND sale_id <> $2)
				WHERE sale_id = $1;
			`
			if _, err := tx.Exec(ctx, flagQuery, *originalSaleID, returnID); err != nil {
				return apperrors.NewAppError(500, "failed to update returned flag on sale "+*originalSaleID, err)
			}
		}
	}
	return removeSaleRecordInTx(ctx, tx, returnID, saleDeletionStockSign(domain.KindReturn))
}

// restoreSaleDebtInTx deletes the debt-cut payment row the return created on
// the parent and lowers the parent's paid amount accordingly.
func restoreSaleDebtInTx(ctx context.Context, tx pgx.Tx, parentID, paymentID, returnID string) error {
	var payment models.SalePayment
	err := tx.QueryRow(ctx, `SELECT payment_id, sale_id, paid_at, amount, method, bank_id, note, created_by FROM sale_payments WHERE payment_id = $1 AND sale_id = $2;`, paymentID, parentID).
		Scan(&payment.PaymentID, &payment.SaleID, &payment.PaidAt, &payment.Amount, &payment.Method, &payment.BankID, &payment.Note, &payment.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already gone; nothing to restore.
			return nil
		}
		return apperrors.NewAppError(500, "failed to load debt cut payment "+paymentID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sale_payments WHERE payment_id = $1;`, paymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete debt cut payment "+paymentID, err)
	}

	var paid, total decimal.Decimal
	if err := tx.QueryRow(ctx, `SELECT amount_paid, total_amount FROM sales WHERE sale_id = $1;`, parentID).Scan(&paid, &total); err != nil {
		return apperrors.NewAppError(500, "failed to load sale "+parentID, err)
	}
	newPaid, newStatus := restoredPaymentState(paid, total, payment.Amount)

	updateQuery := `UPDATE sales SET amount_paid = $1, payment_status = $2 WHERE sale_id = $3;`
	if _, err := tx.Exec(ctx, updateQuery, newPaid, string(newStatus), parentID); err != nil {
		return apperrors.NewAppError(500, "failed to restore debt on sale "+parentID+" for return "+returnID, err)
	}
	return nil
}

// removeSaleRecordInTx reverses the record's stock movement (sign gives the
// restore direction), deletes its cash entries and then the record itself.
// Item and payment rows go with it via ON DELETE CASCADE.
func removeSaleRecordInTx(ctx context.Context, tx pgx.Tx, saleID string, stockSign int64) error {
	itemRows, err := tx.Query(ctx, `SELECT product_id, quantity FROM sale_items WHERE sale_id = $1;`, saleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query items of sale "+saleID, err)
	}
	items := []itemQuantity{}
	for itemRows.Next() {
		var it itemQuantity
		if err := itemRows.Scan(&it.ProductID, &it.Quantity); err != nil {
			itemRows.Close()
			return apperrors.NewAppError(500, "failed to scan item of sale "+saleID, err)
		}
		items = append(items, it)
	}
	itemRows.Close()
	if err := itemRows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating items of sale "+saleID, err)
	}
	deltas := make(map[string]int64)
	accumulateStockReversal(deltas, items, stockSign)

	var cashierID string
	if err := tx.QueryRow(ctx, `SELECT cashier_id FROM sales WHERE sale_id = $1;`, saleID).Scan(&cashierID); err != nil {
		return apperrors.NewAppError(500, "failed to load sale "+saleID, err)
	}
	if err := applyStockDeltasInTx(ctx, tx, deltas, cashierID, timeNow()); err != nil {
		return err
	}
	if err := deleteCashEntriesByReferenceInTx(ctx, tx, saleID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to delete sale "+saleID, err)
	}
	return nil
}

// FindSaleByID retrieves a sale record with its line items and payment history.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.SaleRecord, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE sale_id = $1;`, saleID)
	m, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("sale " + saleID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find sale "+saleID, err)
	}

	sale := mapping.ToDomainSale(m)
	if sale.Items, err = findSaleItems(ctx, r.Pool, saleID); err != nil {
		return nil, err
	}
	if sale.PaymentHistory, err = findSalePayments(ctx, r.Pool, saleID); err != nil {
		return nil, err
	}
	return &sale, nil
}

func findSaleItems(ctx context.Context, q pgxQuerier, saleID string) ([]domain.LineItem, error) {
	rows, err := q.Query(ctx, `
		SELECT sale_id, line_no, product_id, product_name, quantity, unit_price, unit_cost
		FROM sale_items WHERE sale_id = $1 ORDER BY line_no;
	`, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items of sale "+saleID, err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var m models.SaleItem
		if err := rows.Scan(&m.SaleID, &m.LineNo, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice, &m.UnitCost); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item of sale "+saleID, err)
		}
		items = append(items, mapping.ToDomainLineItemFromSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating items of sale "+saleID, err)
	}
	return items, nil
}

func findSalePayments(ctx context.Context, q pgxQuerier, saleID string) ([]domain.PaymentEntry, error) {
	rows, err := q.Query(ctx, `
		SELECT payment_id, sale_id, paid_at, amount, method, bank_id, note, created_by
		FROM sale_payments WHERE sale_id = $1 ORDER BY paid_at, payment_id;
	`, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments of sale "+saleID, err)
	}
	defer rows.Close()

	payments := []domain.PaymentEntry{}
	for rows.Next() {
		var m models.SalePayment
		if err := rows.Scan(&m.PaymentID, &m.SaleID, &m.PaidAt, &m.Amount, &m.Method, &m.BankID, &m.Note, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment of sale "+saleID, err)
		}
		payments = append(payments, mapping.ToDomainSalePayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payments of sale "+saleID, err)
	}
	return payments, nil
}

// FindReturnsByOriginalSaleID retrieves all RETURN children of a sale, items included.
func (r *PgxSaleRepository) FindReturnsByOriginalSaleID(ctx context.Context, saleID string) ([]domain.SaleRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+saleColumns+` FROM sales WHERE original_sale_id = $1 ORDER BY created_at;`, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query returns of sale "+saleID, err)
	}
	defer rows.Close()

	returns := []domain.SaleRecord{}
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan return of sale "+saleID, err)
		}
		returns = append(returns, mapping.ToDomainSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating returns of sale "+saleID, err)
	}

	for i := range returns {
		if returns[i].Items, err = findSaleItems(ctx, r.Pool, returns[i].SaleID); err != nil {
			return nil, err
		}
	}
	return returns, nil
}

// SumReturnedQuantities returns, per product, the quantity already returned
// across all RETURN children of the given sale.
func (r *PgxSaleRepository) SumReturnedQuantities(ctx context.Context, originalSaleID string) (map[string]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT si.product_id, COALESCE(SUM(si.quantity), 0)
		FROM sale_items si
		JOIN sales s ON si.sale_id = s.sale_id
		WHERE s.original_sale_id = $1 AND s.kind = 'RETURN'
		GROUP BY si.product_id;
	`, originalSaleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum returned quantities for sale "+originalSaleID, err)
	}
	defer rows.Close()

	sums := make(map[string]int64)
	for rows.Next() {
		var productID string
		var quantity int64
		if err := rows.Scan(&productID, &quantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan returned quantity for sale "+originalSaleID, err)
		}
		sums[productID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating returned quantities for sale "+originalSaleID, err)
	}
	return sums, nil
}

// ListSales retrieves a paginated list of sale records using token-based pagination.
// It returns the records, a token for the next page, and an error.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, nextToken *string) ([]domain.SaleRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + saleColumns + ` FROM sales`
	// Ordering must be stable: sale_date DESC with created_at DESC as tie-breaker.
	orderByClause := `ORDER BY sale_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastSaleDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `WHERE (sale_date, created_at) < ($1, $2)`
		args = append(args, lastSaleDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0, fetchLimit)
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		sales = append(sales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}

	var nextTokenVal *string
	if len(sales) > limit {
		last := sales[limit-1]
		token := pagination.EncodeToken(last.SaleDate, last.CreatedAt)
		nextTokenVal = &token
		sales = sales[:limit]
	}

	results := make([]domain.SaleRecord, len(sales))
	for i, m := range sales {
		results[i] = mapping.ToDomainSale(m)
	}
	return results, nextTokenVal, nil
}
