package money

import (
	"errors"
	"fmt"
)

// Errors returned by this package. They indicate a programming error or
// corrupted persisted data and are never worth retrying.
// Use [errors.Is] to check for them, the returned errors are always wrapped
// with context.
var (
	// ErrCurrencyMismatch is returned when a binary operation is applied to
	// amounts denominated in different currencies.
	// The concrete error is a [*CurrencyMismatchError].
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInexactAmount is returned when an amount cannot be represented
	// at the scale of its currency without rounding, and rounding was not
	// requested.
	ErrInexactAmount = errors.New("inexact amount")

	// ErrInvalidArgument is returned for arguments outside of their domain,
	// such as a non-positive number of parts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCorruptAmount is returned when an amount read from storage is
	// inconsistent: a single null column, or a scale that differs from
	// the scale of the currency.
	ErrCorruptAmount = errors.New("corrupt amount")

	// ErrAmountOverflow is returned when the result does not fit into
	// a decimal at the scale of its currency.
	ErrAmountOverflow = errors.New("amount overflow")
)

// CurrencyMismatchError records the currencies of the operands of a binary
// operation that requires a single currency.
type CurrencyMismatchError struct {
	Left, Right Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%v: %v and %v", ErrCurrencyMismatch, e.Left, e.Right)
}

// Is reports whether target is [ErrCurrencyMismatch].
func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}

// checkCurr returns a [*CurrencyMismatchError] unless both amounts are
// denominated in the same currency.
func checkCurr(a, b Amount) error {
	if !a.SameCurr(b) {
		return &CurrencyMismatchError{Left: a.Curr(), Right: b.Curr()}
	}
	return nil
}
