package memory

import (
	"context"

	"tesla-buddy/internal/session"
	repo "tesla-buddy/internal/session/repository"
)

// SaveSession stores s under its ID, replacing any previous entry.
func (r *implRepository) SaveSession(ctx context.Context, s *session.Session) error {
	if s == nil {
		return repo.ErrNilSession
	}
	if s.ID == "" {
		return repo.ErrEmptyID
	}
	r.sessions.Add(s.ID, s)
	return nil
}

// GetSession returns nil when not found, not an error.
func (r *implRepository) GetSession(ctx context.Context, id string) (*session.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, nil
	}
	return s, nil
}

// DeleteSession removes a session and reports whether it existed.
func (r *implRepository) DeleteSession(ctx context.Context, id string) (bool, error) {
	return r.sessions.Remove(id), nil
}

// CountSessions returns the number of live sessions.
func (r *implRepository) CountSessions(ctx context.Context) int {
	return r.sessions.Len()
}
