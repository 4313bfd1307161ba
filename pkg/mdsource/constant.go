package mdsource

import "time"

const (
	// ErrorDocument replaces a document that could not be loaded.
	ErrorDocument = "# Error loading content"

	DefaultTimeout = 15 * time.Second

	// Remote documents larger than this are rejected.
	MaxDocumentBytes = 4 << 20
)
