package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// CheckoutInput describes one checkout submission. The buy-now path carries
// its selection explicitly here instead of a client-local side channel.
type CheckoutInput struct {
	// Source selects between consuming the persistent cart and a single
	// buy-now product.
	Source entity.CheckoutSource

	// PaymentMethod must be one of UPI, CARD or COD.
	PaymentMethod entity.PaymentMethod

	// IdempotencyKey is a client-generated token for this checkout
	// attempt. Submitting the same key again returns the original order
	// instead of creating a duplicate.
	IdempotencyKey string

	// ProductID is the buy-now selection. Ignored for cart checkouts.
	ProductID string
}

// CheckoutResult reports a completed (or replayed) checkout.
type CheckoutResult struct {
	Order *entity.Order `json:"order"`

	// AlreadyPlaced is true when the idempotency key matched a previous
	// attempt and no new order was written.
	AlreadyPlaced bool `json:"already_placed"`

	// EstimatedDelivery is a derived display value, not persisted on the
	// order.
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// CheckoutUsecase converts a pending selection into a durable order,
// exactly once per idempotency key.
type CheckoutUsecase interface {
	// PlaceOrder snapshots the selected items, writes one immutable
	// order and, for cart checkouts, clears the consumed items in the
	// same transaction.
	PlaceOrder(ctx context.Context, userID string, input *CheckoutInput) (*CheckoutResult, error)
}
