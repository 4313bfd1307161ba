package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/session"
	"tesla-buddy/pkg/mdsource"
)

func newSessionID() string {
	return uuid.NewString()
}

// loadDocument resolves the document of s. Load failures become the
// error document rather than an error.
func (uc *implUseCase) loadDocument(ctx context.Context, s *session.Session) string {
	if s.Source == "" {
		return s.Content
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.FetchTimeout)
	defer cancel()
	return uc.source.Load(ctx, s.Source)
}

// newRenderer wires a renderer whose hooks log toggles and apply the
// link policy for session id.
func (uc *implUseCase) newRenderer(id string, interactive bool) *checklist.Renderer {
	store := checklist.NewStore(func(label string, checked bool) {
		uc.l.Infof(context.Background(), "session %s: checkbox %q toggled to: %t", id, label, checked)
	})
	return checklist.NewRenderer(store, uc.transformer, checklist.Options{
		Interactive: interactive,
		OnLinkPress: func(link string) bool {
			allowed := uc.linkAllowed(link)
			uc.l.Infof(context.Background(), "session %s: link pressed %s (proceed=%t)", id, link, allowed)
			return allowed
		},
	})
}

// linkAllowed lets links through when no allow-list is configured,
// otherwise only absolute http(s) links to an allowed host (or a
// subdomain of one) proceed.
func (uc *implUseCase) linkAllowed(link string) bool {
	if len(uc.cfg.AllowedLinkHosts) == 0 {
		return true
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, allowed := range uc.cfg.AllowedLinkHosts {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

// validateSource checks a user-supplied source URL. Only remote
// documents may be requested through the API.
func validateSource(raw string) error {
	if !mdsource.IsRemote(raw) {
		return session.ErrInvalidSource
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return session.ErrInvalidSource
	}
	return nil
}

// getSession loads a session or returns ErrSessionNotFound.
func (uc *implUseCase) getSession(ctx context.Context, id string) (*session.Session, error) {
	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.getSession GetSession: %v", err)
		return nil, err
	}
	if s == nil {
		return nil, session.ErrSessionNotFound
	}
	return s, nil
}

// render builds the view of a locked session.
func (uc *implUseCase) render(ctx context.Context, s *session.Session) (session.View, error) {
	tree, err := s.Renderer.Render(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.render %s: %v", s.ID, err)
		return session.View{}, err
	}
	return session.View{Info: s.Info(), Tree: tree}, nil
}
