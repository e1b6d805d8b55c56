package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(orderRepo *mockRepo.MockOrderRepository, receipt *mockSvc.MockReceiptService) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderRepo:      orderRepo,
		ReceiptService: receipt,
		Config: &config.Config{
			Checkout: &config.CheckoutConfig{DeliveryEstimateDays: 4},
		},
		Logger: testLogger(),
	})
}

func testOrder(id, userID string, createdAt time.Time) *entity.Order {
	return &entity.Order{
		ID:            id,
		UserID:        userID,
		Items:         []entity.OrderItem{{PricedSnapshot: testProduct("p1", 10000).Snapshot(), Quantity: 1}},
		Total:         10000,
		PaymentMethod: entity.PaymentCOD,
		Status:        entity.OrderPlaced,
		CreatedAt:     createdAt,
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	service := newOrderService(mockOrder, new(mockSvc.MockReceiptService))

	ctx := context.Background()
	newer := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-48 * time.Hour)
	mockOrder.On("ListOrdersByUser", ctx, "user-1").Return([]*entity.Order{
		testOrder("order-2", "user-1", newer),
		testOrder("order-1", "user-1", older),
	}, nil)

	views, err := service.ListOrders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "order-2", views[0].Order.ID)
	assert.Equal(t, newer.AddDate(0, 0, 4), views[0].EstimatedDelivery)
	assert.Equal(t, older.AddDate(0, 0, 4), views[1].EstimatedDelivery)
}

func TestOrderService_ListOrders_Empty(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	service := newOrderService(mockOrder, new(mockSvc.MockReceiptService))

	ctx := context.Background()
	mockOrder.On("ListOrdersByUser", ctx, "user-1").Return([]*entity.Order{}, nil)

	views, err := service.ListOrders(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestOrderService_GetOrder(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	service := newOrderService(mockOrder, new(mockSvc.MockReceiptService))

	ctx := context.Background()
	createdAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	mockOrder.On("FindOrderByID", ctx, "order-1").
		Return(testOrder("order-1", "user-1", createdAt), nil)

	view, err := service.GetOrder(ctx, "user-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", view.Order.ID)
	assert.Equal(t, createdAt.AddDate(0, 0, 4), view.EstimatedDelivery)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	service := newOrderService(mockOrder, new(mockSvc.MockReceiptService))

	ctx := context.Background()
	mockOrder.On("FindOrderByID", ctx, "ghost").Return(nil, repository.ErrOrderNotFound)

	view, err := service.GetOrder(ctx, "user-1", "ghost")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_OtherUsersOrderReadsAsNotFound(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	service := newOrderService(mockOrder, new(mockSvc.MockReceiptService))

	ctx := context.Background()
	mockOrder.On("FindOrderByID", ctx, "order-1").
		Return(testOrder("order-1", "user-2", time.Now()), nil)

	view, err := service.GetOrder(ctx, "user-1", "order-1")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrderReceipt(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	mockReceipt := new(mockSvc.MockReceiptService)
	service := newOrderService(mockOrder, mockReceipt)

	ctx := context.Background()
	order := testOrder("order-1", "user-1", time.Now())
	mockOrder.On("FindOrderByID", ctx, "order-1").Return(order, nil)
	mockReceipt.On("GenerateOrderReceipt", order).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := service.GetOrderReceipt(ctx, "user-1", "order-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_GetOrderReceipt_EnforcesOwnership(t *testing.T) {
	mockOrder := new(mockRepo.MockOrderRepository)
	mockReceipt := new(mockSvc.MockReceiptService)
	service := newOrderService(mockOrder, mockReceipt)

	ctx := context.Background()
	mockOrder.On("FindOrderByID", ctx, "order-1").
		Return(testOrder("order-1", "user-2", time.Now()), nil)

	png, err := service.GetOrderReceipt(ctx, "user-1", "order-1")
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	mockReceipt.AssertNotCalled(t, "GenerateOrderReceipt", mock.Anything)
}
