package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockrepo "bazaar/internal/mocks/repository"
	mockservice "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler         *OrderEventHandler
	notificationSvc *mockservice.MockNotificationService
	cartRepo        *mockrepo.MockCartRepository
	orderRepo       *mockrepo.MockOrderRepository
}

func newHandlerFixture() *handlerFixture {
	notificationSvc := new(mockservice.MockNotificationService)
	cartRepo := new(mockrepo.MockCartRepository)
	orderRepo := new(mockrepo.MockOrderRepository)

	h := NewOrderEventHandler(OrderEventHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
		CartRepo:        cartRepo,
		OrderRepo:       orderRepo,
	})

	return &handlerFixture{
		handler:         h,
		notificationSvc: notificationSvc,
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
	}
}

func testOrderEvent() *service.OrderEvent {
	return &service.OrderEvent{
		OrderID:           "order-1",
		UserID:            "user-1",
		Total:             25000,
		PaymentMethod:     "COD",
		Status:            "PLACED",
		ItemCount:         2,
		ConsumedProducts:  []string{"p1", "p2"},
		EstimatedDelivery: time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

func placedOrder() *entity.Order {
	return &entity.Order{
		ID:            "order-1",
		UserID:        "user-1",
		Total:         25000,
		PaymentMethod: entity.PaymentCOD,
		Status:        entity.OrderPlaced,
		CreatedAt:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *service.OrderEvent) *bytes.Buffer {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.OrderID
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func doPush(t *testing.T, h *OrderEventHandler, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestHandlePush_SendsConfirmationAndSweepsCart(t *testing.T) {
	f := newHandlerFixture()
	event := testOrderEvent()

	f.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(placedOrder(), nil)

	var sentTopic, sentBody string
	f.notificationSvc.On("SendTopicNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sentTopic = args.String(1)
			sentBody = args.String(3)
		}).
		Return(nil)
	f.cartRepo.On("DeleteItem", mock.Anything, "user-1", "p1").Return(nil)
	f.cartRepo.On("DeleteItem", mock.Anything, "user-1", "p2").Return(nil)

	rec := doPush(t, f.handler, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-user-1", sentTopic)
	assert.Contains(t, sentBody, "2 item(s)")
	assert.Contains(t, sentBody, "Estimated delivery 2026-09-05")
	f.cartRepo.AssertExpectations(t)
	f.notificationSvc.AssertExpectations(t)
}

func TestHandlePush_MalformedEstimatedDeliveryOmitsEstimate(t *testing.T) {
	f := newHandlerFixture()
	event := testOrderEvent()
	event.EstimatedDelivery = "soon"

	f.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(placedOrder(), nil)

	var sentBody string
	f.notificationSvc.On("SendTopicNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sentBody = args.String(3)
		}).
		Return(nil)
	f.cartRepo.On("DeleteItem", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	rec := doPush(t, f.handler, pushBody(t, event))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, sentBody, "Estimated delivery")
	f.notificationSvc.AssertExpectations(t)
}

func TestHandlePush_UnknownOrderIsSwallowed(t *testing.T) {
	f := newHandlerFixture()

	f.orderRepo.On("FindOrderByID", mock.Anything, "order-1").
		Return(nil, repository.ErrOrderNotFound)

	rec := doPush(t, f.handler, pushBody(t, testOrderEvent()))

	// A bogus event must not be redelivered forever.
	assert.Equal(t, http.StatusOK, rec.Code)
	f.notificationSvc.AssertNotCalled(t, "SendTopicNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePush_StoreFailureTriggersRetry(t *testing.T) {
	f := newHandlerFixture()

	f.orderRepo.On("FindOrderByID", mock.Anything, "order-1").
		Return(nil, errors.New("store unavailable"))

	rec := doPush(t, f.handler, pushBody(t, testOrderEvent()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_NotificationFailureTriggersRetry(t *testing.T) {
	f := newHandlerFixture()

	f.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(placedOrder(), nil)
	f.notificationSvc.On("SendTopicNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("messaging down"))

	rec := doPush(t, f.handler, pushBody(t, testOrderEvent()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	f.cartRepo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePush_SweepFailureIsBestEffort(t *testing.T) {
	f := newHandlerFixture()

	f.orderRepo.On("FindOrderByID", mock.Anything, "order-1").Return(placedOrder(), nil)
	f.notificationSvc.On("SendTopicNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	f.cartRepo.On("DeleteItem", mock.Anything, "user-1", "p1").Return(errors.New("store unavailable"))
	f.cartRepo.On("DeleteItem", mock.Anything, "user-1", "p2").Return(nil)

	rec := doPush(t, f.handler, pushBody(t, testOrderEvent()))

	assert.Equal(t, http.StatusOK, rec.Code)
	f.cartRepo.AssertExpectations(t)
}

func TestHandlePush_UndecodableDataIsRejected(t *testing.T) {
	f := newHandlerFixture()

	var msg PubSubMessage
	msg.Message.Data = "not base64!"
	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	rec := doPush(t, f.handler, bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.orderRepo.AssertNotCalled(t, "FindOrderByID", mock.Anything, mock.Anything)
}
