package repository

import (
	"context"

	"tesla-buddy/internal/session"
)

// Repository is the composed interface for the session data store.
type Repository interface {
	SessionRepository
}

// SessionRepository defines all access methods for live sessions.
type SessionRepository interface {
	SaveSession(ctx context.Context, s *session.Session) error
	// GetSession returns nil (and no error) when the session does not exist.
	GetSession(ctx context.Context, id string) (*session.Session, error)
	DeleteSession(ctx context.Context, id string) (bool, error)
	CountSessions(ctx context.Context) int
}
