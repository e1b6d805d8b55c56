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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	orderRepo   *mockRepo.MockOrderRepository
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	publisher   *mockSvc.MockEventPublisher
	service     usecase.CheckoutUsecase
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		orderRepo:   new(mockRepo.MockOrderRepository),
		cartRepo:    new(mockRepo.MockCartRepository),
		productRepo: new(mockRepo.MockProductRepository),
		publisher:   new(mockSvc.MockEventPublisher),
	}
	f.service = NewCheckoutService(CheckoutServiceParams{
		OrderRepo:      f.orderRepo,
		CartRepo:       f.cartRepo,
		ProductRepo:    f.productRepo,
		EventPublisher: f.publisher,
		Config: &config.Config{
			Checkout: &config.CheckoutConfig{DeliveryEstimateDays: 4},
		},
		Logger: testLogger(),
	})

	return f
}

func cartCheckoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Source:         entity.SourceCart,
		PaymentMethod:  entity.PaymentCOD,
		IdempotencyKey: uuid.NewString(),
	}
}

func TestCheckoutService_PlaceOrder_FromCart(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()
	input := cartCheckoutInput()

	items := entity.CartItems{
		testCartItem("p1", 10000, 2),
		testCartItem("p2", 5000, 1),
	}
	f.cartRepo.On("ListItems", ctx, "user-1").Return(items, nil)

	var placement *repository.OrderPlacement
	f.orderRepo.On("PlaceOrder", ctx, mock.AnythingOfType("*repository.OrderPlacement")).
		Run(func(args mock.Arguments) {
			placement = args.Get(1).(*repository.OrderPlacement)
		}).
		Return(&repository.PlacementResult{OrderID: "order-1"}, nil)

	createdAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	f.orderRepo.On("FindOrderByID", ctx, "order-1").Return(&entity.Order{
		ID:            "order-1",
		UserID:        "user-1",
		Total:         25000,
		PaymentMethod: entity.PaymentCOD,
		Status:        entity.OrderPlaced,
		CreatedAt:     createdAt,
	}, nil)
	f.publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	result, err := f.service.PlaceOrder(ctx, "user-1", input)
	require.NoError(t, err)
	assert.False(t, result.AlreadyPlaced)
	assert.Equal(t, "order-1", result.Order.ID)
	assert.Equal(t, createdAt.AddDate(0, 0, 4), result.EstimatedDelivery)

	// The placement carries order, idempotency key and the cart items to
	// delete, so the repository can commit all three in one transaction.
	require.NotNil(t, placement)
	assert.Equal(t, input.IdempotencyKey, placement.IdempotencyKey)
	assert.Equal(t, []string{"p1", "p2"}, placement.ConsumeProductIDs)
	assert.Equal(t, entity.Money(25000), placement.Order.Total)
	assert.Len(t, placement.Order.Items, 2)
	f.cartRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_StatusFollowsPayment(t *testing.T) {
	tests := []struct {
		method entity.PaymentMethod
		status entity.OrderStatus
	}{
		{method: entity.PaymentCOD, status: entity.OrderPlaced},
		{method: entity.PaymentUPI, status: entity.OrderPending},
		{method: entity.PaymentCard, status: entity.OrderPending},
	}

	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			f := newCheckoutFixture()
			ctx := context.Background()
			input := cartCheckoutInput()
			input.PaymentMethod = tt.method

			f.cartRepo.On("ListItems", ctx, "user-1").
				Return(entity.CartItems{testCartItem("p1", 500, 1)}, nil)

			var placement *repository.OrderPlacement
			f.orderRepo.On("PlaceOrder", ctx, mock.Anything).
				Run(func(args mock.Arguments) {
					placement = args.Get(1).(*repository.OrderPlacement)
				}).
				Return(&repository.PlacementResult{OrderID: "order-1"}, nil)
			f.orderRepo.On("FindOrderByID", ctx, "order-1").Return(&entity.Order{
				ID: "order-1", UserID: "user-1", Status: tt.status,
			}, nil)
			f.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)

			_, err := f.service.PlaceOrder(ctx, "user-1", input)
			require.NoError(t, err)
			assert.Equal(t, tt.status, placement.Order.Status)
		})
	}
}

func TestCheckoutService_PlaceOrder_BuyNow(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()
	input := &usecase.CheckoutInput{
		Source:         entity.SourceBuyNow,
		PaymentMethod:  entity.PaymentUPI,
		IdempotencyKey: uuid.NewString(),
		ProductID:      "p9",
	}

	f.productRepo.On("FindProductByID", ctx, "p9").Return(testProduct("p9", 79900), nil)

	var placement *repository.OrderPlacement
	f.orderRepo.On("PlaceOrder", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			placement = args.Get(1).(*repository.OrderPlacement)
		}).
		Return(&repository.PlacementResult{OrderID: "order-2"}, nil)
	f.orderRepo.On("FindOrderByID", ctx, "order-2").Return(&entity.Order{
		ID: "order-2", UserID: "user-1", Status: entity.OrderPending,
	}, nil)
	f.publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)

	result, err := f.service.PlaceOrder(ctx, "user-1", input)
	require.NoError(t, err)
	assert.Equal(t, "order-2", result.Order.ID)

	// Buy-now bypasses the cart entirely: one item, nothing consumed.
	require.Len(t, placement.Order.Items, 1)
	assert.Equal(t, "p9", placement.Order.Items[0].ProductID)
	assert.Equal(t, 1, placement.Order.Items[0].Quantity)
	assert.Empty(t, placement.ConsumeProductIDs)
	f.cartRepo.AssertNotCalled(t, "ListItems", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.cartRepo.On("ListItems", ctx, "user-1").Return(entity.CartItems{}, nil)

	result, err := f.service.PlaceOrder(ctx, "user-1", cartCheckoutInput())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	f.orderRepo.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_InvalidPaymentMethod(t *testing.T) {
	f := newCheckoutFixture()
	input := cartCheckoutInput()
	input.PaymentMethod = entity.PaymentMethod("CRYPTO")

	result, err := f.service.PlaceOrder(context.Background(), "user-1", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodInvalid)
}

func TestCheckoutService_PlaceOrder_InvalidSource(t *testing.T) {
	f := newCheckoutFixture()
	input := cartCheckoutInput()
	input.Source = entity.CheckoutSource("wishlist")

	result, err := f.service.PlaceOrder(context.Background(), "user-1", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutSourceInvalid)
}

func TestCheckoutService_PlaceOrder_MissingIdempotencyKey(t *testing.T) {
	f := newCheckoutFixture()
	input := cartCheckoutInput()
	input.IdempotencyKey = "not-a-uuid"

	result, err := f.service.PlaceOrder(context.Background(), "user-1", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyRequired)
}

func TestCheckoutService_PlaceOrder_BuyNowWithoutProduct(t *testing.T) {
	f := newCheckoutFixture()
	input := cartCheckoutInput()
	input.Source = entity.SourceBuyNow

	result, err := f.service.PlaceOrder(context.Background(), "user-1", input)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCheckoutService_PlaceOrder_ReplayReturnsOriginalOrder(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()
	input := cartCheckoutInput()

	f.cartRepo.On("ListItems", ctx, "user-1").
		Return(entity.CartItems{testCartItem("p1", 500, 1)}, nil)
	f.orderRepo.On("PlaceOrder", ctx, mock.Anything).
		Return(&repository.PlacementResult{OrderID: "order-1", AlreadyPlaced: true}, nil)
	f.orderRepo.On("FindOrderByID", ctx, "order-1").Return(&entity.Order{
		ID: "order-1", UserID: "user-1", Status: entity.OrderPlaced,
	}, nil)

	result, err := f.service.PlaceOrder(ctx, "user-1", input)
	require.NoError(t, err)
	assert.True(t, result.AlreadyPlaced)
	assert.Equal(t, "order-1", result.Order.ID)

	// A replayed key must not emit a second event.
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_PlacementFailure(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.cartRepo.On("ListItems", ctx, "user-1").
		Return(entity.CartItems{testCartItem("p1", 500, 1)}, nil)
	f.orderRepo.On("PlaceOrder", ctx, mock.Anything).
		Return(nil, errors.New("transaction aborted"))

	result, err := f.service.PlaceOrder(ctx, "user-1", cartCheckoutInput())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)

	// The failed transaction leaves the cart untouched and publishes nothing.
	f.cartRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCheckoutService_PlaceOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	f.cartRepo.On("ListItems", ctx, "user-1").
		Return(entity.CartItems{testCartItem("p1", 500, 1)}, nil)
	f.orderRepo.On("PlaceOrder", ctx, mock.Anything).
		Return(&repository.PlacementResult{OrderID: "order-1"}, nil)
	f.orderRepo.On("FindOrderByID", ctx, "order-1").Return(&entity.Order{
		ID: "order-1", UserID: "user-1", Status: entity.OrderPlaced,
	}, nil)
	f.publisher.On("PublishOrderEvent", ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	result, err := f.service.PlaceOrder(ctx, "user-1", cartCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, "order-1", result.Order.ID)
}
