package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// OrderItemModel is one immutable line of an order document.
type OrderItemModel struct {
	ProductID string `firestore:"productId"`
	Name      string `firestore:"name"`
	Category  string `firestore:"category"`
	Price     int64  `firestore:"price"`
	Image     string `firestore:"image"`
	Quantity  int    `firestore:"quantity"`
}

// OrderModel is the Firestore-specific struct for the 'orders' collection.
// CreatedAt carries the serverTimestamp tag: the store assigns it at commit
// time, so ordering does not depend on client clocks.
type OrderModel struct {
	UserID        string           `firestore:"userId"`
	Items         []OrderItemModel `firestore:"items"`
	Total         int64            `firestore:"total"`
	PaymentMethod string           `firestore:"paymentMethod"`
	Status        string           `firestore:"status"`
	CreatedAt     time.Time        `firestore:"createdAt,serverTimestamp"`
}

// CheckoutAttemptModel is the Firestore-specific struct for the
// 'checkout_attempts' collection. Documents are keyed by
// '{userId}:{idempotencyKey}' and written in the same transaction as the
// order they record, which is what makes checkout replays detectable.
type CheckoutAttemptModel struct {
	UserID    string    `firestore:"userId"`
	OrderID   string    `firestore:"orderId"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

// FromOrderDomain converts a domain order to its document form.
func FromOrderDomain(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			Price:     int64(item.Price),
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
	}

	return &OrderModel{
		UserID:        order.UserID,
		Items:         items,
		Total:         int64(order.Total),
		PaymentMethod: order.PaymentMethod.String(),
		Status:        order.Status.String(),
	}
}

// ToOrderDomain converts a stored order document to the domain entity.
func ToOrderDomain(id string, m *OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, entity.OrderItem{
			PricedSnapshot: entity.PricedSnapshot{
				ProductID: item.ProductID,
				Name:      item.Name,
				Category:  item.Category,
				Price:     entity.Money(item.Price),
				Image:     item.Image,
			},
			Quantity: item.Quantity,
		})
	}

	return &entity.Order{
		ID:            id,
		UserID:        m.UserID,
		Items:         items,
		Total:         entity.Money(m.Total),
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Status:        entity.OrderStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}
