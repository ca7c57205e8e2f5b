package handlers

import (
	"errors"

	"github.com/pocketbase/pocketbase/apis"

	"campus-pop/internal/status"
)

// apiError maps the service error taxonomy onto HTTP responses. Store
// failures keep their message verbatim; nothing here retries.
func apiError(err error) error {
	var validationErr *status.ValidationError
	var opErr *status.OperationFailed

	switch {
	case errors.As(err, &validationErr):
		return apis.NewBadRequestError(validationErr.Message, err)
	case errors.Is(err, status.ErrAuthRequired):
		return apis.NewUnauthorizedError("Authentication required", err)
	case errors.Is(err, status.ErrForbidden), errors.Is(err, status.ErrSelfParticipate):
		return apis.NewForbiddenError(err.Error(), err)
	case errors.Is(err, status.ErrEventNotFound):
		return apis.NewNotFoundError(err.Error(), err)
	case errors.Is(err, status.ErrScheduleWindow), errors.Is(err, status.ErrUnknownStatus):
		return apis.NewBadRequestError(err.Error(), err)
	case errors.As(err, &opErr):
		return apis.NewBadRequestError(opErr.Error(), err)
	default:
		return apis.NewBadRequestError(err.Error(), err)
	}
}
