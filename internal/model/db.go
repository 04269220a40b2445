package model

import "time"

// StorageEntry is one key/value pair of the durable client-local store.
// A browser would keep these in localStorage; here they live in sqlite,
// scoped per session so concurrent shoppers do not share checkpoints.
type StorageEntry struct {
	SessionID string `gorm:"primaryKey;size:64;not null"`
	Key       string `gorm:"primaryKey;size:64;not null"`
	Value     string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
