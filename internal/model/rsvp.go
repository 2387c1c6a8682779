package model

import (
	"net/mail"
	"time"
	"unicode/utf8"
)

// RSVP represents a person's registration for an event. RSVPs are
// created and deleted, never updated.
type RSVP struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Constraints
const (
	MaxRSVPUserNameLength = 100

	// MaxRSVPResults caps how many RSVPs a list query returns
	MaxRSVPResults = 500
)

// CreateRSVPRequest represents a request to RSVP to an event
type CreateRSVPRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	EventID  string `json:"event_id"`
}

// Validate checks the request fields and returns one FieldError per violation
func (r *CreateRSVPRequest) Validate() []FieldError {
	var errs []FieldError
	if r.UserName == "" {
		errs = append(errs, FieldError{Field: "user_name", Message: "user_name is required"})
	} else if utf8.RuneCountInString(r.UserName) > MaxRSVPUserNameLength {
		errs = append(errs, FieldError{Field: "user_name", Message: "user_name exceeds maximum length"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if !IsValidEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email is not a valid address"})
	}
	if r.EventID == "" {
		errs = append(errs, FieldError{Field: "event_id", Message: "event_id is required"})
	}
	return errs
}

// IsValidEmail reports whether s parses as a bare RFC 5322 address
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// RSVPFilters holds the optional list filters for RSVPs. Both filters
// are case-insensitive exact matches.
type RSVPFilters struct {
	UserName *string
	Email    *string
}

// DeleteRSVPResult confirms an RSVP deletion
type DeleteRSVPResult struct {
	Message string `json:"message"`
	RSVPID  string `json:"rsvp_id"`
}
