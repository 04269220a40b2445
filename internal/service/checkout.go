package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/client"
	"khalti-storefront-demo/internal/dto"
	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/money"
	"khalti-storefront-demo/internal/repository"
	"khalti-storefront-demo/internal/store"
)

type CheckoutService interface {
	Initiate(ctx context.Context, sessionID string, user *model.User) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	carts       store.CartStore
	checkpoints repository.CheckpointRepository
	khalti      client.KhaltiClient
	baseURL     string
	orderName   string
}

func NewCheckoutService(
	carts store.CartStore,
	checkpoints repository.CheckpointRepository,
	khalti client.KhaltiClient,
	baseURL string,
	orderName string,
) CheckoutService {
	return &checkoutServiceImpl{
		carts:       carts,
		checkpoints: checkpoints,
		khalti:      khalti,
		baseURL:     baseURL,
		orderName:   orderName,
	}
}

// Initiate snapshots the cart, checkpoints it, and hands back the redirect to
// the hosted payment page. The checkpoint write is an ordered precondition of
// returning the URL: once the browser navigates to the gateway's origin no
// code runs here again, so an unverifiable state must be impossible.
//
// An empty cart is not rejected here; it yields a zero-amount request, and
// blocking it is the caller's job.
func (s *checkoutServiceImpl) Initiate(ctx context.Context, sessionID string, user *model.User) (*dto.CheckoutResponse, error) {
	cart := s.carts.Get(sessionID)
	total := cart.Total()
	orderID := newOrderID()

	err := s.checkpoints.Save(ctx, sessionID, &model.CheckoutCheckpoint{
		OrderID: orderID,
		Items:   cart.Items,
		Total:   total,
	})
	if err != nil {
		return nil, &apperr.PersistenceError{Op: "save checkout checkpoint", Err: err}
	}

	redirectURL, err := s.khalti.BuildCheckoutURL(&client.CheckoutRequest{
		AmountPaisa:       money.ToMinorUnits(total),
		PurchaseOrderID:   orderID,
		PurchaseOrderName: s.orderName,
		ReturnURL:         s.baseURL + "/api/payment/return",
		WebsiteURL:        s.baseURL,
		Customer:          user,
		Items:             cart.Items,
	})
	if err != nil {
		return nil, fmt.Errorf("build checkout url: %w", err)
	}

	return &dto.CheckoutResponse{
		OrderID:     orderID,
		RedirectURL: redirectURL,
	}, nil
}

// newOrderID is unique with high probability across initiations from the same
// client: millisecond timestamp plus a random suffix wide enough that
// same-millisecond collisions do not happen at human click rates. Nothing
// checks it against a server, so it is a local guarantee only.
func newOrderID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
