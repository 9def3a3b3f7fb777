// Package apperrors defines the error taxonomy shared across the engine.
// Operator-visible failures always carry the entity id, the rule violated
// and the numeric values involved, to support audit and appeal.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrPending indicates a legitimate waiting state, not a failure
	ErrPending = errors.New("reconciliation pending: not all volume records present")

	// ErrNotFound indicates a missing entity
	ErrNotFound = errors.New("not found")

	// ErrWindowLocked indicates a settlement window already being processed
	ErrWindowLocked = errors.New("settlement window is locked by another run")

	// ErrDuplicateSettlement indicates the window has already been settled
	ErrDuplicateSettlement = errors.New("settlement already finalized for window")
)

// InputError is a synchronously rejected malformed input. It is never
// silently coerced.
type InputError struct {
	EntityType string
	EntityID   string
	Rule       string
	Detail     string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input for %s %s: %s (%s)", e.EntityType, e.EntityID, e.Rule, e.Detail)
}

// NewInputError builds an InputError with formatted detail values
func NewInputError(entityType, entityID, rule, detailFormat string, args ...interface{}) *InputError {
	return &InputError{
		EntityType: entityType,
		EntityID:   entityID,
		Rule:       rule,
		Detail:     fmt.Sprintf(detailFormat, args...),
	}
}

// ReconciliationMismatchError indicates settlement totals that do not tie
// out against the external notice. Always surfaced, never auto-corrected:
// it implies either a calculation bug or an undisclosed adjustment.
type ReconciliationMismatchError struct {
	WindowID string
	Computed string
	Reported string
	Delta    string
}

func (e *ReconciliationMismatchError) Error() string {
	return fmt.Sprintf("settlement mismatch for window %s: computed net %s, reported %s, delta %s",
		e.WindowID, e.Computed, e.Reported, e.Delta)
}

// ExternalFailureError wraps an exhausted external call. The locally
// computed result is preserved and the failure escalated for review.
type ExternalFailureError struct {
	Target   string
	Attempts int
	Err      error
}

func (e *ExternalFailureError) Error() string {
	return fmt.Sprintf("external call to %s failed after %d attempts: %v", e.Target, e.Attempts, e.Err)
}

func (e *ExternalFailureError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is an InputError
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
