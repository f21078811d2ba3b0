package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/tokosakti/pos_ledger_app/internal/core/ports/services"
	"github.com/tokosakti/pos_ledger_app/internal/dto"
	"github.com/tokosakti/pos_ledger_app/internal/middleware"
)

// productService manages the product catalog. Stock levels are read-only from
// this service: they change only inside posting transactions.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct adds a catalog item with its opening stock.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	product := domain.Product{
		ProductID: uuid.NewString(),
		SKU:       req.SKU,
		Name:      req.Name,
		Category:  req.Category,
		UnitPrice: req.UnitPrice,
		UnitCost:  req.UnitCost,
		Stock:     req.InitialStock,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		logger.Error("Failed to create product", slog.String("error", err.Error()), slog.String("sku", req.SKU))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

// UpdateProduct applies partial catalog changes to an existing product.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.UnitCost != nil {
		product.UnitCost = *req.UnitCost
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	return product, nil
}

// GetProductByID retrieves a single catalog item.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves the full catalog.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
