package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"khalti-storefront-demo/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.List(ctx, service.ProductQuery{
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.productService.Categories(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, categories)
}
