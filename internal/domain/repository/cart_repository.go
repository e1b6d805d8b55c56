package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartItemNotFound is returned when a cart item is not found.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for a user's pending cart items.
// Items live under the user's cart keyed by product ID, so each product
// appears at most once.
type CartRepository interface {
	// UpsertItem writes an item keyed by its product ID, replacing any
	// existing item for the same product.
	UpsertItem(ctx context.Context, userID string, item *entity.CartItem) error

	// FindItemByID retrieves a single cart item by its product ID.
	FindItemByID(ctx context.Context, userID, productID string) (*entity.CartItem, error)

	// ListItems retrieves all pending items for a user.
	ListItems(ctx context.Context, userID string) (entity.CartItems, error)

	// UpdateQuantity sets an item's quantity to an absolute value.
	// Callers are responsible for keeping the value >= 1.
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error

	// DeleteItem removes an item from the cart. Deleting an absent item
	// is not an error.
	DeleteItem(ctx context.Context, userID, productID string) error
}
