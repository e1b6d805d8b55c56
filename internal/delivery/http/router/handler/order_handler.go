package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order history handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders returns the caller's order history, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	views, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetOrder returns one of the caller's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	orderID := c.Param("id")
	if orderID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Order ID is required")
	}

	view, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// GetOrderReceipt streams the QR receipt image for one of the caller's orders.
func (h *OrderHandler) GetOrderReceipt(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	orderID := c.Param("id")
	if orderID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Order ID is required")
	}

	png, err := h.uc.GetOrderReceipt(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
