package usecase

import (
	"context"

	"tesla-buddy/internal/session"
)

// Open creates a session from a source URL, inline content, or the
// configured default source, in that order of preference.
func (uc *implUseCase) Open(ctx context.Context, input session.OpenInput) (session.OpenOutput, error) {
	if input.SourceURL != "" && input.Content != "" {
		return session.OpenOutput{}, session.ErrInvalidSource
	}

	s := &session.Session{
		ID:          uc.newID(),
		Interactive: uc.cfg.Interactive,
	}
	if input.Interactive != nil {
		s.Interactive = *input.Interactive
	}

	switch {
	case input.SourceURL != "":
		if err := validateSource(input.SourceURL); err != nil {
			return session.OpenOutput{}, err
		}
		s.Source = input.SourceURL
	case input.Content != "":
		s.Content = input.Content
	default:
		if uc.cfg.DefaultSource == "" {
			return session.OpenOutput{}, session.ErrInvalidSource
		}
		s.Source = uc.cfg.DefaultSource
	}

	doc := uc.loadDocument(ctx, s)
	s.OpenedAt = uc.now()
	s.ReloadedAt = s.OpenedAt
	s.Renderer = uc.newRenderer(s.ID, s.Interactive)
	s.Renderer.Load(doc)

	s.Lock()
	defer s.Unlock()

	view, err := uc.render(ctx, s)
	if err != nil {
		return session.OpenOutput{}, err
	}

	if err := uc.repo.SaveSession(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.Open SaveSession: %v", err)
		return session.OpenOutput{}, err
	}

	uc.l.Infof(ctx, "session %s opened (source=%q, checkboxes=%d)", s.ID, s.Source, view.Tree.Stats.Total)
	return session.OpenOutput{View: view}, nil
}
