package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the catalog listing request. Both filters are
// optional query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	query := usecase.ProductQuery{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	products, err := h.uc.ListProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles the single product detail request.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product ID is required")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}
