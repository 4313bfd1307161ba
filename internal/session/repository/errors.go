package repository

import "errors"

var (
	ErrNilSession = errors.New("session is nil")
	ErrEmptyID    = errors.New("session id is empty")
)
