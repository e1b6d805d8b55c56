package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// CartView bundles a user's pending items with their computed total.
type CartView struct {
	Items entity.CartItems `json:"items"`
	Total entity.Money     `json:"total"`
}

// CartUsecase defines the cart management use cases. Every call takes the
// acting user's identity explicitly; there is no ambient session.
type CartUsecase interface {
	// AddToCart snapshots the product and upserts it into the user's
	// cart with quantity 1, replacing any existing item for the product.
	AddToCart(ctx context.Context, userID, productID string) (*entity.CartItem, error)

	// GetCart retrieves the user's pending items and total.
	GetCart(ctx context.Context, userID string) (*CartView, error)

	// AdjustQuantity applies a relative quantity change to a cart item.
	// The resulting quantity is clamped at a minimum of 1; removal is an
	// explicit separate operation.
	AdjustQuantity(ctx context.Context, userID, productID string, delta int) (*entity.CartItem, error)

	// RemoveItem deletes an item from the user's cart.
	RemoveItem(ctx context.Context, userID, productID string) error
}
