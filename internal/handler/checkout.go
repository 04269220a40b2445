package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"khalti-storefront-demo/internal/middleware"
	"khalti-storefront-demo/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Initiate returns the gateway redirect. The client must navigate to it as-is;
// by the time the response is written the checkpoint is already durable.
func (h *CheckoutHandler) Initiate(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.checkoutService.Initiate(ctx, middleware.SessionID(c), middleware.CurrentUser(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, resp)
}
