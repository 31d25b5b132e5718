package cart

import (
	"errors"
	"fmt"
)

// ErrInvalidLineItem marks a malformed add-to-cart request. The cart is
// not mutated when it is returned.
var ErrInvalidLineItem = errors.New("cart: invalid line item")

// PersistenceError reports that the durable cart slot could not be
// written or read. The in-memory cart stays authoritative for the
// session; callers should warn that the cart may not survive a reload.
type PersistenceError struct {
	Op  string // "save" or "load"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("cart: %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
