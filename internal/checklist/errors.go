package checklist

import "errors"

var (
	ErrUnknownKey = errors.New("checkbox key not found")
	ErrReadOnly   = errors.New("checklist is read-only")
)
