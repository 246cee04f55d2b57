package xorindex

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers should compare against these with errors.Is
// rather than matching error strings.
var (
	// ErrInvalidConfiguration is returned when segments < 2, an
	// unsupported fingerprint width is requested, or the key count is
	// non-positive.
	ErrInvalidConfiguration = errors.New("xorindex: invalid configuration")

	// ErrEmptyKeySet is returned by Build when given zero keys.
	ErrEmptyKeySet = errors.New("xorindex: cannot build a filter over zero keys")

	// ErrConstructionBudgetExceeded is returned when peeling fails to
	// complete within MaxAttempts. The caller may retry with a larger
	// m (more headroom over n) or a different seed.
	ErrConstructionBudgetExceeded = errors.New("xorindex: construction budget exceeded")

	// ErrWidthMismatch is returned by Load when the fingerprint width
	// recorded in the stream does not match the T the caller asked to
	// decode into.
	ErrWidthMismatch = errors.New("xorindex: fingerprint width mismatch")
)

// BudgetExceededError wraps ErrConstructionBudgetExceeded with the number
// of attempts actually made, so callers can log or decide on a retry
// policy without reparsing an error string.
type BudgetExceededError struct {
	Attempts int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("xorindex: construction budget exceeded after %d attempts", e.Attempts)
}

func (e *BudgetExceededError) Unwrap() error {
	return ErrConstructionBudgetExceeded
}
