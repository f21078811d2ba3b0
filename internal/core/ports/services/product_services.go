package services

import (
	"context"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
)

// ProductSvcFacade manages the product catalog consumed by the posters.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
