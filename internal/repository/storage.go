package repository

import (
	"context"
	"errors"
	"time"

	"khalti-storefront-demo/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrKeyNotFound is returned when a key has no value for the session.
var ErrKeyNotFound = errors.New("storage key not found")

// StorageRepository is the durable client-local store: string keys to string
// values, scoped per session. It survives the round trip to the payment
// gateway's origin but carries no expiry.
type StorageRepository interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	// SetMany writes all pairs in one transaction; either every key lands
	// or none do.
	SetMany(ctx context.Context, sessionID string, values map[string]string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

type storageRepoImpl struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepoImpl{
		db: db,
	}
}

func (r *storageRepoImpl) Get(ctx context.Context, sessionID, key string) (string, error) {
	var entry model.StorageEntry
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}

	return entry.Value, nil
}

func (r *storageRepoImpl) Set(ctx context.Context, sessionID, key, value string) error {
	return r.upsert(r.db.WithContext(ctx), sessionID, key, value)
}

func (r *storageRepoImpl) SetMany(ctx context.Context, sessionID string, values map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := r.upsert(tx, sessionID, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *storageRepoImpl) Delete(ctx context.Context, sessionID string, keys ...string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND key IN ?", sessionID, keys).
		Delete(&model.StorageEntry{}).Error
}

func (r *storageRepoImpl) upsert(tx *gorm.DB, sessionID, key, value string) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&model.StorageEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
	}).Error
}
