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

// AddCartItemRequest is the body for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// AdjustQuantityRequest is the body for a relative quantity change.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetCart returns the caller's pending items and computed total.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	view, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds a product to the caller's cart with quantity 1.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	item, err := h.uc.AddToCart(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// AdjustQuantity applies a relative quantity change to a cart item.
func (h *CartHandler) AdjustQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	productID := c.Param("id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	var req AdjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Delta must be a non-zero integer")
	}

	item, err := h.uc.AdjustQuantity(c.Request().Context(), userID, productID, req.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// RemoveItem deletes an item from the caller's cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	productID := c.Param("id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"product_id": productID}, "Item removed from cart")
}
