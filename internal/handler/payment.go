package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"khalti-storefront-demo/internal/dto"
	"khalti-storefront-demo/internal/middleware"
	"khalti-storefront-demo/internal/money"
	"khalti-storefront-demo/internal/service"
)

type PaymentHandler struct {
	reconcileService service.ReconcileService
}

func NewPaymentHandler(reconcileService service.ReconcileService) *PaymentHandler {
	return &PaymentHandler{
		reconcileService: reconcileService,
	}
}

// Return is the gateway's return_url target. Always 200: the verdict lives in
// the body, and the transaction details are echoed back for display whether
// or not verification held.
func (h *PaymentHandler) Return(c echo.Context) error {
	ctx := c.Request().Context()

	outcome, err := h.reconcileService.Reconcile(ctx, middleware.SessionID(c), c.QueryParams())
	if err != nil {
		return httpError(err)
	}

	resp := &dto.ReconcileResponse{
		Status: outcome.Status.String(),
		Reason: string(outcome.Reason),
	}
	if outcome.Params != nil {
		resp.TransactionID = outcome.Params.TransactionID
		resp.AmountPaisa = outcome.Params.AmountPaisa
		resp.Amount = money.FromMinorUnits(outcome.Params.AmountPaisa).StringFixed(2)
		resp.PurchaseOrderID = outcome.Params.PurchaseOrderID
		resp.PurchaseOrderName = outcome.Params.PurchaseOrderName
	}

	return c.JSON(http.StatusOK, resp)
}
