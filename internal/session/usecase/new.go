package usecase

import (
	"time"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/session/repository"
	"tesla-buddy/pkg/log"
	"tesla-buddy/pkg/mdsource"
)

// Config carries the checklist defaults applied to new sessions.
type Config struct {
	DefaultSource    string
	Interactive      bool
	FetchTimeout     time.Duration
	AllowedLinkHosts []string
}

// implUseCase is the private implementation of session.UseCase.
type implUseCase struct {
	repo        repository.Repository
	source      mdsource.Source
	transformer checklist.ProseTransformer
	cfg         Config
	l           log.Logger
	now         func() time.Time
	newID       func() string
}

// New creates a new session UseCase implementation.
func New(
	repo repository.Repository,
	source mdsource.Source,
	transformer checklist.ProseTransformer,
	cfg Config,
	l log.Logger,
) *implUseCase {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = mdsource.DefaultTimeout
	}
	return &implUseCase{
		repo:        repo,
		source:      source,
		transformer: transformer,
		cfg:         cfg,
		l:           l,
		now:         time.Now,
		newID:       newSessionID,
	}
}
