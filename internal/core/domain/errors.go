package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation matches any business-rule violation via [errors.Is].
var ErrInvalidOperation = errors.New("invalid operation")

// InvalidOperationError is the single error kind for rejected business
// operations: stock, expiration, balance and cart constraints.
// Reason is the human-readable message surfaced to the caller.
type InvalidOperationError struct {
	Reason string
}

func (e InvalidOperationError) Error() string {
	return e.Reason
}

func (e InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// InvalidOperationf constructs an [InvalidOperationError] with a formatted reason.
func InvalidOperationf(format string, args ...any) error {
	return InvalidOperationError{Reason: fmt.Sprintf(format, args...)}
}
