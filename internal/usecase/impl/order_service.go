package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo      repository.OrderRepository
	receiptService service.ReceiptService
	config         *config.Config
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	ReceiptService service.ReceiptService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:      params.OrderRepo,
		receiptService: params.ReceiptService,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// ListOrders retrieves the user's order history, newest first
func (s *orderService) ListOrders(ctx context.Context, userID string) ([]*usecase.OrderView, error) {
	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, &usecase.OrderView{
			Order:             order,
			EstimatedDelivery: s.estimateDelivery(order.CreatedAt),
		})
	}

	return views, nil
}

// GetOrder retrieves one order and verifies the caller owns it.
// An order belonging to another user reads as not found, so the endpoint
// does not reveal which order IDs exist.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID string) (*usecase.OrderView, error) {
	order, err := s.loadOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderView{
		Order:             order,
		EstimatedDelivery: s.estimateDelivery(order.CreatedAt),
	}, nil
}

// GetOrderReceipt renders the QR receipt image for an owned order
func (s *orderService) GetOrderReceipt(ctx context.Context, userID, orderID string) ([]byte, error) {
	order, err := s.loadOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	receipt, err := s.receiptService.GenerateOrderReceipt(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt")
	}

	return receipt, nil
}

func (s *orderService) loadOwnedOrder(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		s.logger.Warn("Order access denied",
			slog.String("order_id", orderID),
			slog.String("user_id", userID),
		)

		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return order, nil
}

func (s *orderService) estimateDelivery(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, s.config.Checkout.DeliveryEstimateDays)
}
