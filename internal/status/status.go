package status

import (
	"errors"
	"fmt"
)

var (
	ErrAuthRequired    = errors.New("auth: authentication required")
	ErrForbidden       = errors.New("auth: not the event creator")
	ErrScheduleWindow  = errors.New("event: date outside the scheduling window")
	ErrUnknownStatus   = errors.New("participation: unknown status")
	ErrEventNotFound   = errors.New("event: event not found")
	ErrSelfParticipate = errors.New("participation: organizers cannot join their own events")
)

// ValidationError carries the first violated rule, verbatim, so the form can
// surface it to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// OperationFailed wraps a store error. The message is passed through
// unchanged and the operation is never retried.
type OperationFailed struct {
	Op  string
	Err error
}

func (e *OperationFailed) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationFailed) Unwrap() error {
	return e.Err
}

func FailedOp(op string, err error) *OperationFailed {
	return &OperationFailed{Op: op, Err: err}
}
