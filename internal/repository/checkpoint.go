package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"khalti-storefront-demo/internal/model"

	"github.com/shopspring/decimal"
)

// Storage keys for the pending-checkout checkpoint. These are the only keys
// the checkout flow touches.
const (
	keyPendingOrderID = "pending-order-id"
	keyCartItems      = "cart-items"
	keyCartTotal      = "cart-total"
)

// ErrNoCheckpoint is returned when no checkout is pending for the session.
var ErrNoCheckpoint = errors.New("no pending checkout checkpoint")

// CheckpointRepository persists the snapshot written before redirecting to
// the hosted payment page. A checkpoint left behind by an abandoned checkout
// stays in storage until overwritten by the next initiation; Load must
// tolerate that staleness.
type CheckpointRepository interface {
	Save(ctx context.Context, sessionID string, cp *model.CheckoutCheckpoint) error
	Load(ctx context.Context, sessionID string) (*model.CheckoutCheckpoint, error)
	Clear(ctx context.Context, sessionID string) error
}

type checkpointRepoImpl struct {
	storage StorageRepository
}

func NewCheckpointRepository(storage StorageRepository) CheckpointRepository {
	return &checkpointRepoImpl{
		storage: storage,
	}
}

func (r *checkpointRepoImpl) Save(ctx context.Context, sessionID string, cp *model.CheckoutCheckpoint) error {
	items, err := json.Marshal(cp.Items)
	if err != nil {
		return fmt.Errorf("serialize cart snapshot: %w", err)
	}

	return r.storage.SetMany(ctx, sessionID, map[string]string{
		keyPendingOrderID: cp.OrderID,
		keyCartItems:      string(items),
		keyCartTotal:      cp.Total.String(),
	})
}

func (r *checkpointRepoImpl) Load(ctx context.Context, sessionID string) (*model.CheckoutCheckpoint, error) {
	orderID, err := r.storage.Get(ctx, sessionID, keyPendingOrderID)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrNoCheckpoint
		}
		return nil, fmt.Errorf("load pending order id: %w", err)
	}

	rawTotal, err := r.storage.Get(ctx, sessionID, keyCartTotal)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrNoCheckpoint
		}
		return nil, fmt.Errorf("load cart total: %w", err)
	}
	total, err := decimal.NewFromString(rawTotal)
	if err != nil {
		return nil, fmt.Errorf("parse cart total %q: %w", rawTotal, err)
	}

	cp := &model.CheckoutCheckpoint{
		OrderID: orderID,
		Total:   total,
	}

	// The serialized cart is display/support detail; a checkpoint without it
	// is still reconcilable.
	rawItems, err := r.storage.Get(ctx, sessionID, keyCartItems)
	if err == nil {
		if err := json.Unmarshal([]byte(rawItems), &cp.Items); err != nil {
			return nil, fmt.Errorf("decode cart snapshot: %w", err)
		}
	} else if !errors.Is(err, ErrKeyNotFound) {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	return cp, nil
}

func (r *checkpointRepoImpl) Clear(ctx context.Context, sessionID string) error {
	return r.storage.Delete(ctx, sessionID, keyPendingOrderID, keyCartItems, keyCartTotal)
}
