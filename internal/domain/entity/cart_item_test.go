package entity

import "testing"

func TestCartItemLineTotal(t *testing.T) {
	t.Parallel()

	item := &CartItem{
		PricedSnapshot: PricedSnapshot{ProductID: "p1", Price: 19900},
		Quantity:       3,
	}

	if got := item.LineTotal(); got != 59700 {
		t.Fatalf("LineTotal() = %d, want 59700", int64(got))
	}
}

func TestCartItemsTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		items    CartItems
		expected Money
	}{
		{name: "empty cart", items: nil, expected: 0},
		{
			name: "single item",
			items: CartItems{
				{PricedSnapshot: PricedSnapshot{Price: 10000}, Quantity: 2},
			},
			expected: 20000,
		},
		{
			name: "multiple items stay exact in minor units",
			items: CartItems{
				{PricedSnapshot: PricedSnapshot{Price: 9999}, Quantity: 3},
				{PricedSnapshot: PricedSnapshot{Price: 1}, Quantity: 1},
				{PricedSnapshot: PricedSnapshot{Price: 50000}, Quantity: 1},
			},
			expected: 79998,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.items.Total(); got != tt.expected {
				t.Fatalf("Total() = %d, want %d", int64(got), int64(tt.expected))
			}
		})
	}
}
