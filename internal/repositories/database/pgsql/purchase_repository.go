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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase records and their postings.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryWithTx
var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, kind, original_purchase_id, purchase_date, total_amount, amount_paid,
		payment_status, payment_method, bank_id, is_returned, supplier_name, note, debt_cut_payment_id,
		created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.Kind,
		&m.OriginalPurchaseID,
		&m.PurchaseDate,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.PaymentStatus,
		&m.PaymentMethod,
		&m.BankID,
		&m.IsReturned,
		&m.SupplierName,
		&m.Note,
		&m.DebtCutPaymentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreatePurchase inserts the purchase with its items, applies the stock deltas
// and writes the cash entry in one transaction.
func (r *PgxPurchaseRepository) CreatePurchase(ctx context.Context, purchase domain.PurchaseRecord, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertPurchaseInTx(ctx, tx, purchase); err != nil {
		return err
	}
	if err := applyStockDeltasInTx(ctx, tx, stockDeltas, purchase.CreatedBy, purchase.CreatedAt); err != nil {
		return err
	}
	if cashEntry != nil {
		if err := insertCashEntryInTx(ctx, tx, *cashEntry); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func insertPurchaseInTx(ctx context.Context, tx pgx.Tx, purchase domain.PurchaseRecord) error {
	m := mapping.ToModelPurchase(purchase)
	purchaseQuery := `
		INSERT INTO purchases (
			purchase_id, kind, original_purchase_id, purchase_date, total_amount, amount_paid,
			payment_status, payment_method, bank_id, is_returned, supplier_name, note, debt_cut_payment_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := tx.Exec(ctx, purchaseQuery,
		m.PurchaseID,
		m.Kind,
		m.OriginalPurchaseID,
		m.PurchaseDate,
		m.TotalAmount,
		m.AmountPaid,
		m.PaymentStatus,
		m.PaymentMethod,
		m.BankID,
		m.IsReturned,
		m.SupplierName,
		m.Note,
		m.DebtCutPaymentID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase "+m.PurchaseID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO purchase_items (purchase_id, line_no, product_id, product_name, quantity, unit_price, unit_cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, item := range mapping.ToModelPurchaseItems(purchase.PurchaseID, purchase.Items) {
		batch.Queue(itemQuery, item.PurchaseID, item.LineNo, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.UnitCost)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase items for "+m.PurchaseID, err)
	}
	return nil
}

func insertPurchasePaymentInTx(ctx context.Context, tx pgx.Tx, purchaseID string, payment domain.PaymentEntry) error {
	m := mapping.ToModelPurchasePayment(purchaseID, payment)
	query := `
		INSERT INTO purchase_payments (payment_id, purchase_id, paid_at, amount, method, bank_id, note, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query, m.PaymentID, m.PurchaseID, m.PaidAt, m.Amount, m.Method, m.BankID, m.Note, m.CreatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment for purchase "+purchaseID, err)
	}
	return nil
}

// CreatePurchaseReturn inserts the RETURN record, appends the debt-cut payment
// to the parent, updates the parent's paid amount and status, applies the
// stock deltas and writes the cash entry, all in one transaction.
func (r *PgxPurchaseRepository) CreatePurchaseReturn(ctx context.Context, ret domain.PurchaseRecord, debtCut *domain.PaymentEntry, stockDeltas map[string]int64, cashEntry *domain.CashEntry) error {
	if ret.OriginalPurchaseID == nil {
		return apperrors.NewAppError(400, "return record has no original purchase id", apperrors.ErrValidation)
	}
	parentID := *ret.OriginalPurchaseID

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var parentKind string
	err = tx.QueryRow(ctx, `SELECT kind FROM purchases WHERE purchase_id = $1 FOR UPDATE;`, parentID).Scan(&parentKind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("purchase " + parentID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock purchase "+parentID, err)
	}

	if err := insertPurchaseInTx(ctx, tx, ret); err != nil {
		return err
	}

	if debtCut != nil {
		if err := insertPurchasePaymentInTx(ctx, tx, parentID, *debtCut); err != nil {
			return err
		}
		updateQuery := `
			UPDATE purchases
			SET amount_paid = amount_paid + $1,
				payment_status = ` + paymentStatusCase + `,
				is_returned = TRUE,
				last_updated_at = $2,
				last_updated_by = $3
			WHERE purchase_id = $4 AND amount_paid + $1 <= total_amount;
		`
		tag, err := tx.Exec(ctx, updateQuery, debtCut.Amount, ret.LastUpdatedAt, ret.LastUpdatedBy, parentID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to apply debt cut to purchase "+parentID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewAppError(409, "debt cut exceeds the outstanding balance of purchase "+parentID, apperrors.ErrConflict)
		}
	} else {
		flagQuery := `UPDATE purchases SET is_returned = TRUE, last_updated_at = $1, last_updated_by = $2 WHERE purchase_id = $3;`
		if _, err := tx.Exec(ctx, flagQuery, ret.LastUpdatedAt, ret.LastUpdatedBy, parentID); err != nil {
			return apperrors.NewAppError(500, "failed to flag purchase "+parentID+" as returned", err)
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

// AddPurchaseRepayment appends a payment entry, bumps the parent's paid amount
// and status under a row lock, and writes the settlement cash entry in one
// transaction. It returns the updated record.
func (r *PgxPurchaseRepository) AddPurchaseRepayment(ctx context.Context, purchaseID string, payment domain.PaymentEntry, cashEntry domain.CashEntry) (*domain.PurchaseRecord, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	row := tx.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE purchase_id = $1 FOR UPDATE;`, purchaseID)
	locked, err := scanPurchase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase " + purchaseID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to lock purchase "+purchaseID, err)
	}

	if err := insertPurchasePaymentInTx(ctx, tx, purchaseID, payment); err != nil {
		return nil, err
	}

	// The row lock serializes concurrent payments, so the new state can be
	// computed here and written back verbatim.
	newPaid, newStatus, ok := appliedPaymentState(locked.AmountPaid, locked.TotalAmount, payment.Amount)
	if !ok {
		return nil, apperrors.NewAppError(409, "payment exceeds the outstanding balance of purchase "+purchaseID, apperrors.ErrConflict)
	}

	updateQuery := `
		UPDATE purchases
		SET amount_paid = $1, payment_status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_id = $5
		RETURNING ` + purchaseColumns + `;
	`
	row = tx.QueryRow(ctx, updateQuery, newPaid, string(newStatus), payment.PaidAt, payment.CreatedBy, purchaseID)
	m, err := scanPurchase(row)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to apply repayment to purchase "+purchaseID, err)
	}

	if err := insertCashEntryInTx(ctx, tx, cashEntry); err != nil {
		return nil, err
	}

	// The response is assembled inside the transaction; the row may already be
	// gone by the time a post-commit read would run.
	purchase := mapping.ToDomainPurchase(m)
	if purchase.Items, err = findPurchaseItems(ctx, tx, purchaseID); err != nil {
		return nil, err
	}
	if purchase.PaymentHistory, err = findPurchasePayments(ctx, tx, purchaseID); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &purchase, nil
}

// DeletePurchaseCascade reverses and removes the record together with all its
// RETURN children, their cash entries and stock effects, and, when the target
// is itself a RETURN, restores the parent's debt, in one transaction.
func (r *PgxPurchaseRepository) DeletePurchaseCascade(ctx context.Context, purchaseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var kind string
	var originalPurchaseID, debtCutPaymentID *string
	err = tx.QueryRow(ctx, `SELECT kind, original_purchase_id, debt_cut_payment_id FROM purchases WHERE purchase_id = $1 FOR UPDATE;`, purchaseID).
		Scan(&kind, &originalPurchaseID, &debtCutPaymentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("purchase " + purchaseID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock purchase "+purchaseID, err)
	}

	switch domain.RecordKind(kind) {
	case domain.KindReturn:
		if err := deletePurchaseReturnInTx(ctx, tx, purchaseID, originalPurchaseID, debtCutPaymentID); err != nil {
			return err
		}
	default:
		childRows, err := tx.Query(ctx, `SELECT purchase_id FROM purchases WHERE original_purchase_id = $1 FOR UPDATE;`, purchaseID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query returns of purchase "+purchaseID, err)
		}
		childIDs := []string{}
		for childRows.Next() {
			var id string
			if err := childRows.Scan(&id); err != nil {
				childRows.Close()
				return apperrors.NewAppError(500, "failed to scan return of purchase "+purchaseID, err)
			}
			childIDs = append(childIDs, id)
		}
		childRows.Close()
		if err := childRows.Err(); err != nil {
			return apperrors.NewAppError(500, "error iterating returns of purchase "+purchaseID, err)
		}

		// A purchase return handed stock back to the supplier; undoing it adds
		// the quantities again. The purchase itself added stock, so its removal
		// subtracts.
		for _, childID := range childIDs {
			if err := removePurchaseRecordInTx(ctx, tx, childID, purchaseDeletionStockSign(domain.KindReturn)); err != nil {
				return err
			}
		}
		if err := removePurchaseRecordInTx(ctx, tx, purchaseID, purchaseDeletionStockSign(domain.RecordKind(kind))); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// deletePurchaseReturnInTx removes a single RETURN record and restores the
// debt it cut on the parent.
func deletePurchaseReturnInTx(ctx context.Context, tx pgx.Tx, returnID string, originalPurchaseID, debtCutPaymentID *string) error {
	if originalPurchaseID != nil {
		var parentKind string
		err := tx.QueryRow(ctx, `SELECT kind FROM purchases WHERE purchase_id = $1 FOR UPDATE;`, *originalPurchaseID).Scan(&parentKind)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewAppError(500, "failed to lock purchase "+*originalPurchaseID, err)
		}
		if err == nil {
			if debtCutPaymentID != nil {
				if err := restorePurchaseDebtInTx(ctx, tx, *originalPurchaseID, *debtCutPaymentID, returnID); err != nil {
					return err
				}
			}
			flagQuery := `
				UPDATE purchases
				SET is_returned = EXISTS (SELECT 1 FROM purchases WHERE original_purchase_id = $1 AND purchase_id <> $2)
				WHERE purchase_id = $1;
			`
			if _, err := tx.Exec(ctx, flagQuery, *originalPurchaseID, returnID); err != nil {
				return apperrors.NewAppError(500, "failed to update returned flag on purchase "+*originalPurchaseID, err)
			}
		}
	}
	return removePurchaseRecordInTx(ctx, tx, returnID, purchaseDeletionStockSign(domain.KindReturn))
}

// restorePurchaseDebtInTx deletes the debt-cut payment row the return created
// on the parent and lowers the parent's paid amount accordingly.
func restorePurchaseDebtInTx(ctx context.Context, tx pgx.Tx, parentID, paymentID, returnID string) error {
	var payment models.PurchasePayment
	err := tx.QueryRow(ctx, `SELECT payment_id, purchase_id, paid_at, amount, method, bank_id, note, created_by FROM purchase_payments WHERE payment_id = $1 AND purchase_id = $2;`, paymentID, parentID).
		Scan(&payment.PaymentID, &payment.PurchaseID, &payment.PaidAt, &payment.Amount, &payment.Method, &payment.BankID, &payment.Note, &payment.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return apperrors.NewAppError(500, "failed to load debt cut payment "+paymentID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_payments WHERE payment_id = $1;`, paymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete debt cut payment "+paymentID, err)
	}

	var paid, total decimal.Decimal
	if err := tx.QueryRow(ctx, `SELECT amount_paid, total_amount FROM purchases WHERE purchase_id = $1;`, parentID).Scan(&paid, &total); err != nil {
		return apperrors.NewAppError(500, "failed to load purchase "+parentID, err)
	}
	newPaid, newStatus := restoredPaymentState(paid, total, payment.Amount)

	updateQuery := `UPDATE purchases SET amount_paid = $1, payment_status = $2 WHERE purchase_id = $3;`
	if _, err := tx.Exec(ctx, updateQuery, newPaid, string(newStatus), parentID); err != nil {
		return apperrors.NewAppError(500, "failed to restore debt on purchase "+parentID+" for return "+returnID, err)
	}
	return nil
}

// removePurchaseRecordInTx reverses the record's stock movement (sign gives
// the restore direction), deletes its cash entries and then the record itself.
func removePurchaseRecordInTx(ctx context.Context, tx pgx.Tx, purchaseID string, stockSign int64) error {
	itemRows, err := tx.Query(ctx, `SELECT product_id, quantity FROM purchase_items WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query items of purchase "+purchaseID, err)
	}
	items := []itemQuantity{}
	for itemRows.Next() {
		var it itemQuantity
		if err := itemRows.Scan(&it.ProductID, &it.Quantity); err != nil {
			itemRows.Close()
			return apperrors.NewAppError(500, "failed to scan item of purchase "+purchaseID, err)
		}
		items = append(items, it)
	}
	itemRows.Close()
	if err := itemRows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating items of purchase "+purchaseID, err)
	}
	deltas := make(map[string]int64)
	accumulateStockReversal(deltas, items, stockSign)

	var createdBy string
	if err := tx.QueryRow(ctx, `SELECT created_by FROM purchases WHERE purchase_id = $1;`, purchaseID).Scan(&createdBy); err != nil {
		return apperrors.NewAppError(500, "failed to load purchase "+purchaseID, err)
	}
	if err := applyStockDeltasInTx(ctx, tx, deltas, createdBy, timeNow()); err != nil {
		return err
	}
	if err := deleteCashEntriesByReferenceInTx(ctx, tx, purchaseID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID); err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase "+purchaseID, err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase record with its line items and payment history.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseRecord, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE purchase_id = $1;`, purchaseID)
	m, err := scanPurchase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase " + purchaseID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase "+purchaseID, err)
	}

	purchase := mapping.ToDomainPurchase(m)
	if purchase.Items, err = findPurchaseItems(ctx, r.Pool, purchaseID); err != nil {
		return nil, err
	}
	if purchase.PaymentHistory, err = findPurchasePayments(ctx, r.Pool, purchaseID); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func findPurchaseItems(ctx context.Context, q pgxQuerier, purchaseID string) ([]domain.LineItem, error) {
	rows, err := q.Query(ctx, `
		SELECT purchase_id, line_no, product_id, product_name, quantity, unit_price, unit_cost
		FROM purchase_items WHERE purchase_id = $1 ORDER BY line_no;
	`, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items of purchase "+purchaseID, err)
	}
	defer rows.Close()

	items := []domain.LineItem{}
	for rows.Next() {
		var m models.PurchaseItem
		if err := rows.Scan(&m.PurchaseID, &m.LineNo, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice, &m.UnitCost); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item of purchase "+purchaseID, err)
		}
		items = append(items, mapping.ToDomainLineItemFromPurchase(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating items of purchase "+purchaseID, err)
	}
	return items, nil
}

func findPurchasePayments(ctx context.Context, q pgxQuerier, purchaseID string) ([]domain.PaymentEntry, error) {
	rows, err := q.Query(ctx, `
		SELECT payment_id, purchase_id, paid_at, amount, method, bank_id, note, created_by
		FROM purchase_payments WHERE purchase_id = $1 ORDER BY paid_at, payment_id;
	`, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments of purchase "+purchaseID, err)
	}
	defer rows.Close()

	payments := []domain.PaymentEntry{}
	for rows.Next() {
		var m models.PurchasePayment
		if err := rows.Scan(&m.PaymentID, &m.PurchaseID, &m.PaidAt, &m.Amount, &m.Method, &m.BankID, &m.Note, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment of purchase "+purchaseID, err)
		}
		payments = append(payments, mapping.ToDomainPurchasePayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payments of purchase "+purchaseID, err)
	}
	return payments, nil
}

// FindReturnsByOriginalPurchaseID retrieves all RETURN children of a purchase, items included.
func (r *PgxPurchaseRepository) FindReturnsByOriginalPurchaseID(ctx context.Context, purchaseID string) ([]domain.PurchaseRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE original_purchase_id = $1 ORDER BY created_at;`, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query returns of purchase "+purchaseID, err)
	}
	defer rows.Close()

	returns := []domain.PurchaseRecord{}
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan return of purchase "+purchaseID, err)
		}
		returns = append(returns, mapping.ToDomainPurchase(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating returns of purchase "+purchaseID, err)
	}

	for i := range returns {
		if returns[i].Items, err = findPurchaseItems(ctx, r.Pool, returns[i].PurchaseID); err != nil {
			return nil, err
		}
	}
	return returns, nil
}

// SumReturnedQuantities returns, per product, the quantity already returned
// across all RETURN children of the given purchase.
func (r *PgxPurchaseRepository) SumReturnedQuantities(ctx context.Context, originalPurchaseID string) (map[string]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT pi.product_id, COALESCE(SUM(pi.quantity), 0)
		FROM purchase_items pi
		JOIN purchases p ON pi.purchase_id = p.purchase_id
		WHERE p.original_purchase_id = $1 AND p.kind = 'RETURN'
		GROUP BY pi.product_id;
	`, originalPurchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum returned quantities for purchase "+originalPurchaseID, err)
	}
	defer rows.Close()

	sums := make(map[string]int64)
	for rows.Next() {
		var productID string
		var quantity int64
		if err := rows.Scan(&productID, &quantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan returned quantity for purchase "+originalPurchaseID, err)
		}
		sums[productID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating returned quantities for purchase "+originalPurchaseID, err)
	}
	return sums, nil
}

// ListPurchases retrieves a paginated list of purchase records using
// token-based pagination.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + purchaseColumns + ` FROM purchases`
	orderByClause := `ORDER BY purchase_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastPurchaseDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `WHERE (purchase_date, created_at) < ($1, $2)`
		args = append(args, lastPurchaseDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query purchases", err)
	}
	defer rows.Close()

	purchases := make([]models.Purchase, 0, fetchLimit)
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan purchase row", err)
		}
		purchases = append(purchases, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating purchase rows", err)
	}

	var nextTokenVal *string
	if len(purchases) > limit {
		last := purchases[limit-1]
		token := pagination.EncodeToken(last.PurchaseDate, last.CreatedAt)
		nextTokenVal = &token
		purchases = purchases[:limit]
	}

	results := make([]domain.PurchaseRecord, len(purchases))
	for i, m := range purchases {
		results[i] = mapping.ToDomainPurchase(m)
	}
	return results, nextTokenVal, nil
}
