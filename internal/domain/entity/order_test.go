package entity

import "testing"

func TestStatusForPayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   PaymentMethod
		expected OrderStatus
	}{
		{name: "cash on delivery is placed immediately", method: PaymentCOD, expected: OrderPlaced},
		{name: "upi awaits payment", method: PaymentUPI, expected: OrderPending},
		{name: "card awaits payment", method: PaymentCard, expected: OrderPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StatusForPayment(tt.method); got != tt.expected {
				t.Fatalf("StatusForPayment(%s) = %s, want %s", tt.method, got, tt.expected)
			}
		})
	}
}

func TestPaymentMethodIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   PaymentMethod
		expected bool
	}{
		{name: "upi", method: PaymentUPI, expected: true},
		{name: "card", method: PaymentCard, expected: true},
		{name: "cod", method: PaymentCOD, expected: true},
		{name: "unknown method", method: PaymentMethod("CRYPTO"), expected: false},
		{name: "empty", method: PaymentMethod(""), expected: false},
		{name: "lowercase is not accepted", method: PaymentMethod("upi"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.method.IsValid(); got != tt.expected {
				t.Fatalf("PaymentMethod(%s).IsValid() = %v, want %v", tt.method, got, tt.expected)
			}
		})
	}
}

func TestCheckoutSourceIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   CheckoutSource
		expected bool
	}{
		{name: "cart", source: SourceCart, expected: true},
		{name: "buy now", source: SourceBuyNow, expected: true},
		{name: "unknown source", source: CheckoutSource("wishlist"), expected: false},
		{name: "empty", source: CheckoutSource(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.source.IsValid(); got != tt.expected {
				t.Fatalf("CheckoutSource(%s).IsValid() = %v, want %v", tt.source, got, tt.expected)
			}
		})
	}
}
