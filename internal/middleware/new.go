package middleware

import (
	"tesla-buddy/pkg/log"
)

// Config tunes the shared HTTP middlewares.
type Config struct {
	RateLimitPerMin int
	SentryEnabled   bool
}

type Middleware struct {
	l             log.Logger
	limiter       *rateLimiter
	sentryEnabled bool
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:             l,
		limiter:       newRateLimiter(cfg.RateLimitPerMin),
		sentryEnabled: cfg.SentryEnabled,
	}
}
