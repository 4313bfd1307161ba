package usecase

import (
	"context"
	"errors"
	"strings"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/session"
)

// Toggle flips one checkbox of a session and returns the re-rendered view.
func (uc *implUseCase) Toggle(ctx context.Context, input session.ToggleInput) (session.ToggleOutput, error) {
	s, err := uc.getSession(ctx, input.ID)
	if err != nil {
		return session.ToggleOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	key := checklist.Key{Depth: input.Depth, Label: strings.TrimSpace(input.Label)}
	checked, err := s.Renderer.Toggle(key)
	switch {
	case errors.Is(err, checklist.ErrReadOnly):
		return session.ToggleOutput{}, session.ErrReadOnly
	case errors.Is(err, checklist.ErrUnknownKey):
		uc.l.Warnf(ctx, "session %s: discarded toggle for unknown item %s", s.ID, key)
		return session.ToggleOutput{}, session.ErrUnknownItem
	case err != nil:
		return session.ToggleOutput{}, err
	}

	view, err := uc.render(ctx, s)
	if err != nil {
		return session.ToggleOutput{}, err
	}

	return session.ToggleOutput{Key: key, Checked: checked, View: view}, nil
}

// PressLink asks the session's link handler whether url may be opened.
func (uc *implUseCase) PressLink(ctx context.Context, input session.PressLinkInput) (session.PressLinkOutput, error) {
	s, err := uc.getSession(ctx, input.ID)
	if err != nil {
		return session.PressLinkOutput{}, err
	}

	s.Lock()
	defer s.Unlock()

	return session.PressLinkOutput{
		URL:     input.URL,
		Proceed: s.Renderer.PressLink(input.URL),
	}, nil
}
