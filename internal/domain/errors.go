package domain

import "errors"

var (
	// ErrNotFound indicates that no entity exists for the given slug or login.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation indicates a save was rejected by a uniqueness or
	// foreign-key constraint (duplicate login, duplicate slug, unknown author).
	ErrConstraintViolation = errors.New("constraint violation")
)
