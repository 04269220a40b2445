package service

import (
	"context"
	"errors"
	"log"
	"net/url"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/client"
	"khalti-storefront-demo/internal/model"
	"khalti-storefront-demo/internal/money"
	"khalti-storefront-demo/internal/repository"
	"khalti-storefront-demo/internal/store"
)

// ReconcileOutcome is the terminal verdict for one return redirect. Params
// carries whatever was parsed from the query string so the UI can show
// transaction details regardless of the verdict.
type ReconcileOutcome struct {
	Status model.ReconcileStatus
	Reason model.FailureReason
	Params *model.PaymentReturnParams
}

type ReconcileService interface {
	Reconcile(ctx context.Context, sessionID string, query url.Values) (*ReconcileOutcome, error)
}

type reconcileServiceImpl struct {
	khalti      client.KhaltiClient
	checkpoints repository.CheckpointRepository
	carts       store.CartStore
}

func NewReconcileService(
	khalti client.KhaltiClient,
	checkpoints repository.CheckpointRepository,
	carts store.CartStore,
) ReconcileService {
	return &reconcileServiceImpl{
		khalti:      khalti,
		checkpoints: checkpoints,
		carts:       carts,
	}
}

// Reconcile decides Verified or Failed for a return redirect by structural
// comparison against the checkpoint written at initiation.
//
// This is a local-trust check, not real verification: every input originates
// from a browser-controlled URL and client-local storage. An authoritative
// outcome needs a server-side lookup against the gateway keyed by a secret
// the client never holds.
func (s *reconcileServiceImpl) Reconcile(ctx context.Context, sessionID string, query url.Values) (*ReconcileOutcome, error) {
	params, err := s.khalti.ParseReturnParams(query)
	if err != nil {
		return &ReconcileOutcome{
			Status: model.ReconcileStatusFailed,
			Reason: model.FailureMalformedReturn,
		}, nil
	}

	cp, err := s.checkpoints.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNoCheckpoint) {
			return &ReconcileOutcome{
				Status: model.ReconcileStatusFailed,
				Reason: model.FailureNoPendingCheckout,
				Params: params,
			}, nil
		}
		return nil, &apperr.PersistenceError{Op: "load checkout checkpoint", Err: err}
	}

	verified := params.Status == model.ReturnStatusCompleted &&
		params.PurchaseOrderID == cp.OrderID &&
		params.AmountPaisa == money.ToMinorUnits(cp.Total)

	if !verified {
		// Storage stays untouched so a retry or support investigation can
		// still inspect the pending checkout.
		return &ReconcileOutcome{
			Status: model.ReconcileStatusFailed,
			Reason: model.FailureMismatch,
			Params: params,
		}, nil
	}

	// Point of no return: the cart is considered fulfilled.
	if err := s.checkpoints.Clear(ctx, sessionID); err != nil {
		log.Println("clear checkout checkpoint:", err)
	}
	s.carts.Clear(sessionID)

	return &ReconcileOutcome{
		Status: model.ReconcileStatusVerified,
		Params: params,
	}, nil
}
