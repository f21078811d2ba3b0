package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	"github.com/tokosakti/pos_ledger_app/internal/utils/mapping"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for the derived report views.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// ListReceivables returns SALE records with an outstanding balance, oldest first.
func (r *PgxReportingRepository) ListReceivables(ctx context.Context) ([]domain.SaleRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales
		WHERE kind = 'SALE' AND amount_paid < total_amount
		ORDER BY sale_date, created_at;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receivables", err)
	}
	defer rows.Close()

	sales := []domain.SaleRecord{}
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receivable row", err)
		}
		sales = append(sales, mapping.ToDomainSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating receivable rows", err)
	}
	return sales, nil
}

// ListPayables returns PURCHASE records with an outstanding balance, oldest first.
func (r *PgxReportingRepository) ListPayables(ctx context.Context) ([]domain.PurchaseRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+purchaseColumns+`
		FROM purchases
		WHERE kind = 'PURCHASE' AND amount_paid < total_amount
		ORDER BY purchase_date, created_at;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payables", err)
	}
	defer rows.Close()

	purchases := []domain.PurchaseRecord{}
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payable row", err)
		}
		purchases = append(purchases, mapping.ToDomainPurchase(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payable rows", err)
	}
	return purchases, nil
}
