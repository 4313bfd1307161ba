package mdsource

import "context"

// Source loads markdown documents.
type Source interface {
	// Fetch GETs url and returns its body. Non-2xx statuses are errors.
	Fetch(ctx context.Context, url string) (string, error)

	// ReadFile reads a local markdown file.
	ReadFile(path string) (string, error)

	// Load resolves a location (http(s) URL or file path) and returns
	// ErrorDocument instead of failing.
	Load(ctx context.Context, location string) string
}
