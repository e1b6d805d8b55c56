package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// ProductQuery narrows a catalog listing. Zero values list everything.
type ProductQuery struct {
	Category string // Exact category match.
	Search   string // Case-insensitive substring match on the name.
}

// CatalogUsecase defines the read-only catalog browsing use cases.
// The catalog itself is owned by an external administrative surface.
type CatalogUsecase interface {
	// ListProducts retrieves catalog entries matching the query.
	ListProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)

	// GetProduct retrieves a single product by ID.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
}
