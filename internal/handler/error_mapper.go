package handler

import (
	"errors"

	"github.com/forgo/gather/internal/model"
	"github.com/forgo/gather/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("event")
	case errors.Is(err, service.ErrRSVPNotFound):
		return model.NewNotFoundError("RSVP")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrAlreadyRSVPd):
		return model.NewConflictError(err.Error())

	// ===== Bad Request Errors → 400 =====
	case errors.Is(err, service.ErrInvalidEventID),
		errors.Is(err, service.ErrInvalidRSVPID),
		errors.Is(err, service.ErrEmptyUpdate):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
