package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/middleware"
	"tesla-buddy/internal/session/repository"
	sessionRepo "tesla-buddy/internal/session/repository/memory"
	sessionUC "tesla-buddy/internal/session/usecase"
	"tesla-buddy/pkg/log"
	"tesla-buddy/pkg/mdsource"
	"tesla-buddy/pkg/mdview"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	middleware      middleware.Config

	// Checklist domain
	source       mdsource.Source
	transformer  checklist.ProseTransformer
	checklist    sessionUC.Config
	sessions     repository.Options
	defaultTheme mdview.Theme
	repo         repository.Repository
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config
	// TrustedProxies may set X-Forwarded-For; empty trusts none and
	// rate limiting keys on the socket address.
	TrustedProxies []string

	// Checklist domain
	Source       mdsource.Source
	Transformer  checklist.ProseTransformer
	Checklist    sessionUC.Config
	Sessions     repository.Options
	DefaultTheme mdview.Theme
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		middleware:      cfg.Middleware,
		source:          cfg.Source,
		transformer:     cfg.Transformer,
		checklist:       cfg.Checklist,
		sessions:        cfg.Sessions,
		defaultTheme:    cfg.DefaultTheme,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv.repo = sessionRepo.New(srv.sessions, srv.l)

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.source == nil {
		return errors.New("markdown source is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
