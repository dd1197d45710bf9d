// Package storage persists the cross-session save: once the phone reboots
// into the cave terminal, every later launch must start there.
package storage

import (
	"context"
	"time"
)

// SaveState is the persisted save file.
type SaveState struct {
	Rebooted bool      `json:"rebooted"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store is the persistence interface for the save state.
type Store interface {
	Ping(ctx context.Context) error
	Close() error

	// SaveRebooted marks the save as rebooted. Idempotent.
	SaveRebooted(ctx context.Context) error

	// Rebooted reports the persisted reboot flag. A missing save reads as
	// false, not an error.
	Rebooted(ctx context.Context) (bool, error)
}
