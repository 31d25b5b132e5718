package checkout

import (
	"errors"
	"fmt"
)

// ErrEmptyCart rejects a submission before validation even starts.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ErrInsufficientStock rejects a placement whose quantities can no
// longer be covered by catalog stock. Raised by the preflight check
// before settlement and again by the locked re-check inside the order
// transaction.
var ErrInsufficientStock = errors.New("checkout: insufficient stock")

// ErrInProgress is returned to a submission that arrives while an earlier
// one is still settling. The second attempt has no side effects; exactly
// one order can come out of the settlement in flight.
var ErrInProgress = errors.New("checkout: submission already in progress")

// ValidationError names the first required field that is missing or
// malformed. No order is created and the cart is untouched.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: missing required field %q", e.Field)
}

// PaymentSettlementError wraps a failed settlement. The cart is preserved
// so the customer can retry.
type PaymentSettlementError struct {
	Err error
}

func (e *PaymentSettlementError) Error() string {
	return fmt.Sprintf("checkout: payment settlement failed: %v", e.Err)
}

func (e *PaymentSettlementError) Unwrap() error { return e.Err }
