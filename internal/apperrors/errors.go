package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of the resource,
// e.g. reversing an entry that is not posted.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInternal is a generic internal failure surfaced when details should not leak to callers.
var ErrInternal = errors.New("internal error")

// ErrConfiguration indicates a missing prerequisite such as an absent tenant context or an
// unknown document-type prefix. Fatal to the operation, never retried.
var ErrConfiguration = errors.New("configuration error")

// ErrUnresolvedAccount indicates no chart-of-accounts mapping exists for a required semantic
// role. Posting must abort; a journal entry can never be created with a missing leg.
var ErrUnresolvedAccount = errors.New("accounting setup incomplete: account role unresolved")

// ErrUnbalancedEntry indicates a posting rule produced lines whose debits do not equal credits.
// This is a logic bug in the rule or upstream amounts and is never auto-corrected.
var ErrUnbalancedEntry = errors.New("journal entry debits do not equal credits")

// ErrNumberRetryExhausted indicates the numbering authority gave up after repeated collisions.
var ErrNumberRetryExhausted = errors.New("document number allocation retries exhausted")

// AppError wraps an underlying error with a code the handler layer can map to an HTTP status.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
