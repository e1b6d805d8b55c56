package service

import "bazaar/internal/domain/entity"

// ReceiptService renders a scannable receipt for a placed order.
type ReceiptService interface {
	// GenerateOrderReceipt returns a QR code PNG encoding the order's
	// identifying fields.
	GenerateOrderReceipt(order *entity.Order) ([]byte, error)
}
