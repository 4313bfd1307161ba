package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tesla-buddy/internal/session"
	"tesla-buddy/internal/session/repository"
	"tesla-buddy/pkg/log"
)

type implRepository struct {
	sessions *expirable.LRU[string, *session.Session]
	l        log.Logger
}

// New creates an in-memory Repository. Sessions expire after opt.TTL and
// the least recently used one is evicted once opt.MaxSessions is reached.
func New(opt repository.Options, l log.Logger) repository.Repository {
	opt = opt.WithDefaults()
	r := &implRepository{l: l}
	r.sessions = expirable.NewLRU[string, *session.Session](
		opt.MaxSessions,
		func(id string, _ *session.Session) {
			r.l.Debugf(context.Background(), "%s: session %s evicted", r.dsn("evict"), id)
		},
		opt.TTL,
	)
	return r
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("session/repository/memory.%s", method)
}
