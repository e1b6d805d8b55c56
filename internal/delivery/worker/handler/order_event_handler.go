// Package handler contains the Pub/Sub push handlers for the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// OrderEventHandler handles Pub/Sub push messages for placed orders: it
// sends the buyer's confirmation push and sweeps any consumed cart items
// that a concurrent client wrote back after the checkout transaction.
type OrderEventHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	cartRepo        repository.CartRepository
	orderRepo       repository.OrderRepository
}

// OrderEventHandlerParams holds dependencies for the OrderEventHandler
type OrderEventHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	CartRepo        repository.CartRepository
	OrderRepo       repository.OrderRepository
}

// NewOrderEventHandler creates a new Pub/Sub push handler for order events
func NewOrderEventHandler(params OrderEventHandlerParams) *OrderEventHandler {
	// Google signs push requests in deployed environments; local pushes
	// from the HTTP publisher carry no token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &OrderEventHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		cartRepo:        params.CartRepo,
		orderRepo:       params.OrderRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *OrderEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("order_id", event.OrderID),
		slog.String("user_id", event.UserID),
		slog.Int("item_count", event.ItemCount),
	)

	if err := h.processOrderEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Order event processed successfully",
		slog.String("order_id", event.OrderID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *OrderEventHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processOrderEvent handles one placed order: confirmation push first, then
// the cart sweep. Both steps are idempotent, so a Pub/Sub redelivery is safe.
func (h *OrderEventHandler) processOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	// The order must exist before we confirm it to the buyer. A missing
	// order is not retryable: the event is bogus or the order was removed.
	order, err := h.orderRepo.FindOrderByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrapf(err, "order %s not found for event", event.OrderID)
		}

		return newRetryableError(errors.WithStack(err))
	}

	if err := h.sendConfirmation(ctx, order, event); err != nil {
		return newRetryableError(err)
	}

	h.sweepConsumedItems(ctx, event)

	return nil
}

// sendConfirmation pushes the order confirmation to the buyer's topic.
// Clients subscribe each signed-in device to "user-{uid}".
func (h *OrderEventHandler) sendConfirmation(ctx context.Context, order *entity.Order, event *service.OrderEvent) error {
	topic := "user-" + order.UserID

	title := "Order placed"
	if order.Status == entity.OrderPending {
		title = "Order received"
	}

	body := fmt.Sprintf("Your order of %d item(s) for %s is %s.",
		event.ItemCount, order.Total.String(), strings.ToLower(order.Status.String()))
	// The estimate arrives as external input; a malformed date drops the
	// sentence rather than failing the confirmation.
	if eta, err := time.Parse(time.RFC3339, event.EstimatedDelivery); err == nil {
		body += " Estimated delivery " + eta.Format("2006-01-02") + "."
	}

	data := map[string]string{
		"order_id": order.ID,
		"status":   order.Status.String(),
	}

	if err := h.notificationSvc.SendTopicNotification(ctx, topic, title, body, data); err != nil {
		return errors.Wrap(err, "failed to send order confirmation")
	}

	return nil
}

// sweepConsumedItems re-deletes the cart items consumed by the checkout.
// The checkout transaction already removed them; this catches items a stale
// client wrote back between the transaction and the event. Failures are
// logged and never fail the event, since the deletes are a best-effort sweep.
func (h *OrderEventHandler) sweepConsumedItems(ctx context.Context, event *service.OrderEvent) {
	for _, productID := range event.ConsumedProducts {
		if err := h.cartRepo.DeleteItem(ctx, event.UserID, productID); err != nil {
			h.logger.Warn("[Worker] Failed to sweep consumed cart item",
				slog.String("order_id", event.OrderID),
				slog.String("product_id", productID),
				slog.Any("error", err),
			)
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
