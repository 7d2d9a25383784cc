package usecase

import "errors"

var (
	// ErrEmptyCart is returned when order construction is attempted on a
	// cart with no items.
	ErrEmptyCart = errors.New("cannot create empty order")
	// ErrTokenExhausted is returned when 100 token candidates in a row
	// collide with existing orders. Persisting a duplicate is never an
	// option; the caller has to fail loudly.
	ErrTokenExhausted = errors.New("order token generation exhausted")
)
