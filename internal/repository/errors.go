package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint was violated.
	ErrDuplicate = errors.New("duplicate")
)
