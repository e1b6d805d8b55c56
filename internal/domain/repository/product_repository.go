// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for catalog reads.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductFilter narrows a catalog listing. Zero values mean no filtering.
type ProductFilter struct {
	Category string // Exact category match.
	Search   string // Case-insensitive substring match on the name.
}

// ProductRepository defines read access to the externally owned catalog.
type ProductRepository interface {
	// FindProductByID retrieves a single product by its document ID.
	FindProductByID(ctx context.Context, productID string) (*entity.Product, error)

	// ListProducts retrieves catalog entries matching the filter.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
