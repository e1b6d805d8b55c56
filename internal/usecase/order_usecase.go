package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// OrderView is an order plus its derived delivery estimate.
type OrderView struct {
	Order *entity.Order `json:"order"`

	// EstimatedDelivery is creation time plus a fixed configured offset.
	// It is computed at read time and never persisted.
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// OrderUsecase defines the order history use cases.
type OrderUsecase interface {
	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]*OrderView, error)

	// GetOrder retrieves one order, enforcing ownership.
	GetOrder(ctx context.Context, userID, orderID string) (*OrderView, error)

	// GetOrderReceipt renders a QR receipt PNG for one order, enforcing
	// ownership.
	GetOrderReceipt(ctx context.Context, userID, orderID string) ([]byte, error)
}
