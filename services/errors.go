package services

import "errors"

// Error classes the controllers translate into HTTP statuses. Services wrap
// them with context via fmt.Errorf("%w: ...") and never retry or swallow them.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)
