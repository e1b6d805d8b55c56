package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// AddToCart snapshots the product and upserts it with quantity 1.
// Re-adding a product that is already in the cart replaces the item,
// matching the upsert-by-product-ID key.
func (s *cartService) AddToCart(ctx context.Context, userID, productID string) (*entity.CartItem, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	item := &entity.CartItem{
		PricedSnapshot: product.Snapshot(),
		Quantity:       1,
		AddedAt:        time.Now(),
	}

	if err := s.cartRepo.UpsertItem(ctx, userID, item); err != nil {
		return nil, errors.Wrap(err, "failed to upsert cart item")
	}

	s.logger.Debug("Added product to cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return item, nil
}

// GetCart retrieves the user's pending items and computed total
func (s *cartService) GetCart(ctx context.Context, userID string) (*usecase.CartView, error) {
	items, err := s.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return &usecase.CartView{
		Items: items,
		Total: items.Total(),
	}, nil
}

// AdjustQuantity applies a relative change to an item's quantity.
// The result is clamped at 1: the decrement control is disabled at quantity 1
// in clients, but the service must not rely on that.
func (s *cartService) AdjustQuantity(ctx context.Context, userID, productID string, delta int) (*entity.CartItem, error) {
	item, err := s.cartRepo.FindItemByID(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	quantity := item.Quantity + delta
	if quantity < 1 {
		quantity = 1
	}

	if quantity != item.Quantity {
		if err := s.cartRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
			return nil, errors.Wrap(err, "failed to update quantity")
		}
	}
	item.Quantity = quantity

	return item, nil
}

// RemoveItem deletes an item from the user's cart
func (s *cartService) RemoveItem(ctx context.Context, userID, productID string) error {
	if err := s.cartRepo.DeleteItem(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to delete cart item")
	}

	return nil
}
