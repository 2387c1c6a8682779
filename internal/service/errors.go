package service

import "errors"

// Sentinel errors returned by services. Handlers match on these with
// errors.Is to pick an HTTP status.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrRSVPNotFound  = errors.New("rsvp not found")

	ErrInvalidEventID = errors.New("invalid event id")
	ErrInvalidRSVPID  = errors.New("invalid rsvp id")

	// ErrAlreadyRSVPd means the email already holds an RSVP for the event
	ErrAlreadyRSVPd = errors.New("already rsvp'd to this event")

	// ErrEmptyUpdate means an update request carried no fields
	ErrEmptyUpdate = errors.New("update contains no fields")
)
