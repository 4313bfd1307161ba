package usecase

import (
	"context"

	"tesla-buddy/internal/session"
)

// Detail renders the current state of a session.
func (uc *implUseCase) Detail(ctx context.Context, id string) (session.DetailOutput, error) {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return session.DetailOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	view, err := uc.render(ctx, s)
	if err != nil {
		return session.DetailOutput{}, err
	}
	return session.DetailOutput{View: view}, nil
}

// Reload re-reads the session's document and reseeds its state.
// All toggles made since the last load are discarded.
func (uc *implUseCase) Reload(ctx context.Context, id string) (session.DetailOutput, error) {
	s, err := uc.getSession(ctx, id)
	if err != nil {
		return session.DetailOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	s.Renderer.Load(uc.loadDocument(ctx, s))
	s.ReloadedAt = uc.now()

	view, err := uc.render(ctx, s)
	if err != nil {
		return session.DetailOutput{}, err
	}

	uc.l.Infof(ctx, "session %s reloaded", s.ID)
	return session.DetailOutput{View: view}, nil
}

// Close discards a session.
func (uc *implUseCase) Close(ctx context.Context, id string) error {
	ok, err := uc.repo.DeleteSession(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Close DeleteSession: %v", err)
		return err
	}
	if !ok {
		return session.ErrSessionNotFound
	}
	return nil
}
