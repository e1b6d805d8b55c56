package entity

import "time"

// PricedSnapshot is a point-in-time copy of a product's displayable fields.
// It is a value object, deliberately distinct from a live Product reference:
// historical orders and pending cart items are immune to later price changes.
type PricedSnapshot struct {
	ProductID string `json:"product_id"` // Reference back to the catalog entry.
	Name      string `json:"name"`       // Name at snapshot time.
	Category  string `json:"category"`   // Category at snapshot time.
	Price     Money  `json:"price"`      // Unit price at snapshot time, minor units.
	Image     string `json:"image"`      // Image URL at snapshot time.
}

// CartItem is one product quantity held by a user, pending purchase.
// Items are keyed by product ID within a user's cart, so re-adding a product
// replaces the existing item rather than incrementing it.
type CartItem struct {
	PricedSnapshot

	Quantity int       `json:"quantity"` // Always >= 1; removal deletes the item.
	AddedAt  time.Time `json:"added_at"` // When the item was (last) added.
}

// LineTotal returns price × quantity for this item.
func (i *CartItem) LineTotal() Money {
	return i.Price * Money(i.Quantity)
}

// CartItems is a user's pending selection in display order.
type CartItems []*CartItem

// Total sums price × quantity over all items, exact in minor units.
func (items CartItems) Total() Money {
	var total Money
	for _, item := range items {
		total += item.LineTotal()
	}

	return total
}
