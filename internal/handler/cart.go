package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"khalti-storefront-demo/internal/dto"
	"khalti-storefront-demo/internal/middleware"
	"khalti-storefront-demo/internal/service"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, h.cartService.Get(ctx, middleware.SessionID(c)))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cart, err := h.cartService.Add(ctx, middleware.SessionID(c), &req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cart := h.cartService.SetQuantity(ctx, middleware.SessionID(c), productID, req.Quantity)
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := productIDFromPath(c)
	if err != nil {
		return err
	}

	cart := h.cartService.Remove(ctx, middleware.SessionID(c), productID)
	return c.JSON(http.StatusOK, cart)
}

func productIDFromPath(c echo.Context) (int64, error) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return productID, nil
}
