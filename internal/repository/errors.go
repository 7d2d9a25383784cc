package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateToken signals the store rejected an order because its
	// token collided with an existing one (unique index backstop).
	ErrDuplicateToken = errors.New("duplicate order token")
)
