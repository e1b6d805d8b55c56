// Package model contains the Firestore-specific document structs and their
// converters to and from domain entities.
package model

import (
	"time"

	"bazaar/internal/domain/entity"
)

// CartItemModel is the Firestore-specific struct for documents under
// 'carts/{userId}/items'. The document ID is the product ID, which is what
// makes re-adding a product an overwrite instead of a duplicate.
type CartItemModel struct {
	Name     string    `firestore:"name"`
	Category string    `firestore:"category"`
	Price    int64     `firestore:"price"`
	Image    string    `firestore:"image"`
	Quantity int       `firestore:"quantity"`
	AddedAt  time.Time `firestore:"addedAt"`
}

// FromCartItemDomain converts a domain cart item to its document form.
func FromCartItemDomain(item *entity.CartItem) *CartItemModel {
	return &CartItemModel{
		Name:     item.Name,
		Category: item.Category,
		Price:    int64(item.Price),
		Image:    item.Image,
		Quantity: item.Quantity,
		AddedAt:  item.AddedAt,
	}
}

// ToCartItemDomain converts a stored cart item document to the domain entity.
func ToCartItemDomain(productID string, m *CartItemModel) *entity.CartItem {
	return &entity.CartItem{
		PricedSnapshot: entity.PricedSnapshot{
			ProductID: productID,
			Name:      m.Name,
			Category:  m.Category,
			Price:     entity.Money(m.Price),
			Image:     m.Image,
		},
		Quantity: m.Quantity,
		AddedAt:  m.AddedAt,
	}
}
