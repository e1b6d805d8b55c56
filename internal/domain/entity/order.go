package entity

import "time"

// PaymentMethod represents how the buyer chose to pay for an order.
type PaymentMethod string

const (
	// PaymentUPI indicates payment through a UPI handle.
	PaymentUPI PaymentMethod = "UPI"
	// PaymentCard indicates payment by credit or debit card.
	PaymentCard PaymentMethod = "CARD"
	// PaymentCOD indicates cash on delivery.
	PaymentCOD PaymentMethod = "COD"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentCOD:
		return true
	default:
		return false
	}
}

// OrderStatus represents the state of an order. Status is assigned once at
// creation; there is no payment-processor callback that transitions it.
type OrderStatus string

const (
	// OrderPlaced is assigned to cash-on-delivery orders at creation.
	OrderPlaced OrderStatus = "PLACED"
	// OrderPending is assigned to orders awaiting an external payment.
	OrderPending OrderStatus = "PENDING"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// StatusForPayment returns the creation status for a payment method:
// COD orders are placed immediately, everything else starts pending.
func StatusForPayment(method PaymentMethod) OrderStatus {
	if method == PaymentCOD {
		return OrderPlaced
	}

	return OrderPending
}

// CheckoutSource identifies where the items of a checkout came from.
type CheckoutSource string

const (
	// SourceCart consumes the user's persistent cart.
	SourceCart CheckoutSource = "cart"
	// SourceBuyNow checks out a single explicit product selection,
	// bypassing the persistent cart.
	SourceBuyNow CheckoutSource = "buy_now"
)

// IsValid checks if the CheckoutSource is a valid value.
func (s CheckoutSource) IsValid() bool {
	return s == SourceCart || s == SourceBuyNow
}

// OrderItem is an immutable line of an order: a priced snapshot plus the
// quantity purchased.
type OrderItem struct {
	PricedSnapshot

	Quantity int `json:"quantity"`
}

// Order is an immutable record of a completed checkout. Items and total are
// never mutated after creation; deletion is an administrative action outside
// this system.
type Order struct {
	ID            string        `json:"id"`             // Store-assigned document ID.
	UserID        string        `json:"user_id"`        // Owning user identity (auth UID).
	Items         []OrderItem   `json:"items"`          // Snapshots at order time.
	Total         Money         `json:"total"`          // Σ price × quantity, minor units.
	PaymentMethod PaymentMethod `json:"payment_method"` // UPI, CARD or COD.
	Status        OrderStatus   `json:"status"`         // PLACED for COD, PENDING otherwise.
	CreatedAt     time.Time     `json:"created_at"`     // Server-assigned creation timestamp.
}
