package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutRequest is the body for placing an order.
type CheckoutRequest struct {
	Source         string `json:"source" validate:"required,oneof=cart buy_now"`
	PaymentMethod  string `json:"payment_method" validate:"required,oneof=UPI CARD COD"`
	IdempotencyKey string `json:"idempotency_key" validate:"required,uuid"`
	ProductID      string `json:"product_id"` // Required only for buy_now.
}

// CheckoutHandler holds dependencies for the checkout handler.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the checkout request. A replayed idempotency key
// returns the previously placed order with HTTP 200 instead of 201.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Checkout input failed validation")
	}

	result, err := h.uc.PlaceOrder(c.Request().Context(), userID, &usecase.CheckoutInput{
		Source:         entity.CheckoutSource(req.Source),
		PaymentMethod:  entity.PaymentMethod(req.PaymentMethod),
		IdempotencyKey: req.IdempotencyKey,
		ProductID:      req.ProductID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if result.AlreadyPlaced {
		return response.Success(c, http.StatusOK, result, "Order was already placed")
	}

	return response.Success(c, http.StatusCreated, result, "Order placed")
}
