package impl

import (
	"io"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id string, price entity.Money) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        "Product " + id,
		Category:    "electronics",
		Price:       price,
		Image:       "https://img.example/" + id + ".jpg",
		Description: "A test product",
		Rating:      4.2,
		Stock:       10,
	}
}

func testCartItem(productID string, price entity.Money, quantity int) *entity.CartItem {
	return &entity.CartItem{
		PricedSnapshot: testProduct(productID, price).Snapshot(),
		Quantity:       quantity,
		AddedAt:        time.Now(),
	}
}
