package repository

import "time"

// Options sizes the session store.
type Options struct {
	MaxSessions int
	TTL         time.Duration
}

const (
	DefaultMaxSessions = 1000
	DefaultTTL         = 24 * time.Hour
)

// WithDefaults fills zero values.
func (o Options) WithDefaults() Options {
	if o.MaxSessions <= 0 {
		o.MaxSessions = DefaultMaxSessions
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	return o
}
