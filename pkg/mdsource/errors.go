package mdsource

import (
	"errors"
	"fmt"
)

// ErrDocumentTooLarge is returned by Fetch when a body exceeds MaxDocumentBytes.
var ErrDocumentTooLarge = errors.New("markdown document too large")

// StatusError is returned by Fetch for non-2xx responses.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.StatusCode)
}
