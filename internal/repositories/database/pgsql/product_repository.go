package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	"github.com/tokosakti/pos_ledger_app/internal/models"
	"github.com/tokosakti/pos_ledger_app/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for the product catalog.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, sku, name, category, unit_price, unit_cost, stock, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.SKU,
		&m.Name,
		&m.Category,
		&m.UnitPrice,
		&m.UnitCost,
		&m.Stock,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindProductByID retrieves a single product.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = $1;`, productID)
	m, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product " + productID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find product "+productID, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// FindProductsByIDs retrieves products keyed by id; missing ids are simply
// absent from the map.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	products := make(map[string]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return products, nil
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = ANY($1);`, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return products, nil
}

// ListProducts retrieves the full catalog ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return products, nil
}

// CreateProduct inserts a catalog item.
func (r *PgxProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (
			product_id, sku, name, category, unit_price, unit_cost, stock, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.SKU,
		m.Name,
		m.Category,
		m.UnitPrice,
		m.UnitCost,
		m.Stock,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "product with sku "+m.SKU+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert product "+m.ProductID, err)
	}
	return nil
}

// UpdateProduct writes catalog fields. Stock is deliberately left out: it only
// moves inside posting transactions.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $1, category = $2, unit_price = $3, unit_cost = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE product_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Category,
		m.UnitPrice,
		m.UnitCost,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.ProductID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product "+m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product " + m.ProductID + " not found")
	}
	return nil
}
