// Package store persists session documents keyed by room code. The
// coordinator never writes blindly: updates go through CompareAndSwap so
// concurrent writers from any server process conflict instead of clobbering
// each other.
package store

import (
	"context"
	"errors"

	"phrasebingo/models"
)

var (
	// ErrNotFound means no session exists for the room code.
	ErrNotFound = errors.New("session not found")
	// ErrConflict means the room code is already taken (CreateIfAbsent) or
	// the document changed since it was read (CompareAndSwap).
	ErrConflict = errors.New("session store conflict")
)

// SessionStore is the shared-document adapter consumed by the coordinator.
// Room codes are uppercased on every lookup; implementations must persist
// and compare the session's Version counter.
type SessionStore interface {
	// Get returns the current session document, or ErrNotFound.
	Get(ctx context.Context, roomCode string) (*models.Session, error)

	// CreateIfAbsent stores a new session only if the room code is free,
	// returning ErrConflict otherwise. Doubles as the collision check
	// during room-code generation.
	CreateIfAbsent(ctx context.Context, session *models.Session) error

	// CompareAndSwap replaces the stored document only if its version still
	// equals expectedVersion, bumping session.Version past it on success.
	// Returns ErrConflict when another writer got there first, ErrNotFound
	// when the session vanished.
	CompareAndSwap(ctx context.Context, expectedVersion int64, session *models.Session) error
}
