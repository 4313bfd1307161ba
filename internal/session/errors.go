package session

import "errors"

var (
	ErrSessionNotFound = errors.New("checklist session not found")
	ErrInvalidSource   = errors.New("invalid checklist source")
	ErrUnknownItem     = errors.New("checklist item not found")
	ErrReadOnly        = errors.New("checklist session is read-only")
)
