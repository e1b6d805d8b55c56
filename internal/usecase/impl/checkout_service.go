package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	productRepo    repository.ProductRepository
	eventPublisher service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	CartRepo       repository.CartRepository
	ProductRepo    repository.ProductRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		orderRepo:      params.OrderRepo,
		cartRepo:       params.CartRepo,
		productRepo:    params.ProductRepo,
		eventPublisher: params.EventPublisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// PlaceOrder converts a pending selection into a durable order, exactly once
// per idempotency key. The order write, the idempotency record and the cart
// deletions commit in a single store transaction, so an interrupted checkout
// never leaves an order next to already-purchased cart items.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID string, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	items, consumeIDs, err := s.collectItems(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrCartEmpty, "no items to check out")
	}

	order := &entity.Order{
		UserID:        userID,
		Items:         items,
		Total:         orderTotal(items),
		PaymentMethod: input.PaymentMethod,
		Status:        entity.StatusForPayment(input.PaymentMethod),
	}

	result, err := s.orderRepo.PlaceOrder(ctx, &repository.OrderPlacement{
		Order:             order,
		IdempotencyKey:    input.IdempotencyKey,
		ConsumeProductIDs: consumeIDs,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrCheckoutFailed, err.Error())
	}

	if result.AlreadyPlaced {
		// A retried submission: return the original order untouched.
		return s.replayResult(ctx, result.OrderID)
	}

	placed, err := s.orderRepo.FindOrderByID(ctx, result.OrderID)
	if err != nil {
		// The order committed; reading it back is best effort.
		s.logger.Warn("Failed to read back placed order",
			slog.String("order_id", result.OrderID),
			slog.Any("error", err),
		)
		order.ID = result.OrderID
		order.CreatedAt = time.Now()
		placed = order
	}

	s.publishOrderEvent(ctx, placed, consumeIDs)

	s.logger.Info("Order placed",
		slog.String("order_id", placed.ID),
		slog.String("user_id", userID),
		slog.String("payment_method", input.PaymentMethod.String()),
		slog.Int("item_count", len(placed.Items)),
	)

	return &usecase.CheckoutResult{
		Order:             placed,
		EstimatedDelivery: s.estimateDelivery(placed.CreatedAt),
	}, nil
}

// validateInput checks the checkout preconditions that do not need any reads
func (s *checkoutService) validateInput(input *usecase.CheckoutInput) error {
	if !input.Source.IsValid() {
		return errors.Wrap(domainerrors.ErrCheckoutSourceInvalid, string(input.Source))
	}
	if !input.PaymentMethod.IsValid() {
		return errors.Wrap(domainerrors.ErrPaymentMethodInvalid, input.PaymentMethod.String())
	}
	if _, err := uuid.Parse(input.IdempotencyKey); err != nil {
		return errors.Wrap(domainerrors.ErrIdempotencyKeyRequired, "idempotency key must be a UUID")
	}
	if input.Source == entity.SourceBuyNow && input.ProductID == "" {
		return errors.Wrap(domainerrors.ErrProductNotFound, "buy-now requires a product")
	}

	return nil
}

// collectItems resolves the checkout selection into order item snapshots and
// the cart item IDs consumed by it
func (s *checkoutService) collectItems(ctx context.Context, userID string, input *usecase.CheckoutInput) ([]entity.OrderItem, []string, error) {
	if input.Source == entity.SourceBuyNow {
		product, err := s.productRepo.FindProductByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, nil, errors.Wrap(domainerrors.ErrProductNotFound, "buy-now product not found")
			}

			return nil, nil, errors.Wrap(err, "failed to find buy-now product")
		}

		items := []entity.OrderItem{{PricedSnapshot: product.Snapshot(), Quantity: 1}}

		// Buy-now never touches the persistent cart.
		return items, nil, nil
	}

	cartItems, err := s.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list cart items")
	}

	items := make([]entity.OrderItem, 0, len(cartItems))
	consumeIDs := make([]string, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, entity.OrderItem{
			PricedSnapshot: item.PricedSnapshot,
			Quantity:       item.Quantity,
		})
		consumeIDs = append(consumeIDs, item.ProductID)
	}

	return items, consumeIDs, nil
}

// replayResult rebuilds the checkout result for an already-committed key
func (s *checkoutService) replayResult(ctx context.Context, orderID string) (*usecase.CheckoutResult, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load previously placed order")
	}

	s.logger.Info("Checkout replayed for existing order",
		slog.String("order_id", orderID),
	)

	return &usecase.CheckoutResult{
		Order:             order,
		AlreadyPlaced:     true,
		EstimatedDelivery: s.estimateDelivery(order.CreatedAt),
	}, nil
}

// publishOrderEvent emits the order-placed event, best effort: the order is
// already durable, so a publish failure is logged and not surfaced.
func (s *checkoutService) publishOrderEvent(ctx context.Context, order *entity.Order, consumeIDs []string) {
	event := &service.OrderEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:           order.ID,
		UserID:            order.UserID,
		Total:             int64(order.Total),
		PaymentMethod:     order.PaymentMethod.String(),
		Status:            order.Status.String(),
		ItemCount:         len(order.Items),
		ConsumedProducts:  consumeIDs,
		EstimatedDelivery: s.estimateDelivery(order.CreatedAt).Format(time.RFC3339),
	}

	if err := s.eventPublisher.PublishOrderEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("Failed to publish order event",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

// estimateDelivery derives the displayed delivery date from the order's
// creation time and the configured fixed offset
func (s *checkoutService) estimateDelivery(createdAt time.Time) time.Time {
	days := s.config.Checkout.DeliveryEstimateDays

	return createdAt.AddDate(0, 0, days)
}

// orderTotal sums price × quantity over order item snapshots
func orderTotal(items []entity.OrderItem) entity.Money {
	var total entity.Money
	for _, item := range items {
		total += item.Price * entity.Money(item.Quantity)
	}

	return total
}
