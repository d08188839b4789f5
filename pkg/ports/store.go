package ports

import (
	"context"

	"github.com/aretw0/frontier/pkg/domain"
)

// SessionStore persists solved sessions and their traces.
type SessionStore interface {
	// Save persists the session under sessionID.
	Save(ctx context.Context, sessionID string, session *domain.Session) error

	// Load retrieves the session for sessionID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
