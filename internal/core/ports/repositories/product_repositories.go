package repositories

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
)

// ProductReader defines read operations for the product catalog.
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves products keyed by id; missing ids are simply
	// absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines catalog write operations. Stock is deliberately not
// writable here: it only moves inside posting transactions.
type ProductWriter interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines the product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
