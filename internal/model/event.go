package model

import (
	"time"
	"unicode/utf8"
)

// Event represents a scheduled gathering that people can RSVP to
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Constraints
const (
	MaxEventTitleLength       = 200
	MaxEventDescriptionLength = 2000
	MaxEventCategoryLength    = 50

	// MaxEventResults caps how many events a list query returns
	MaxEventResults = 100
)

// CreateEventRequest represents a request to create an event
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

// Validate checks the request fields and returns one FieldError per violation
func (r *CreateEventRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if utf8.RuneCountInString(r.Title) > MaxEventTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title exceeds maximum length"})
	}
	if r.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	} else if utf8.RuneCountInString(r.Description) > MaxEventDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description exceeds maximum length"})
	}
	if r.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	}
	if r.Category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "category is required"})
	} else if utf8.RuneCountInString(r.Category) > MaxEventCategoryLength {
		errs = append(errs, FieldError{Field: "category", Message: "category exceeds maximum length"})
	}
	return errs
}

// UpdateEventRequest represents a merge-patch update to an event.
// Nil fields are left untouched, so "not provided" stays distinguishable
// from "provided empty".
type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Category    *string    `json:"category,omitempty"`
}

// Validate checks only the fields that were provided
func (r *UpdateEventRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title != nil {
		if *r.Title == "" {
			errs = append(errs, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if utf8.RuneCountInString(*r.Title) > MaxEventTitleLength {
			errs = append(errs, FieldError{Field: "title", Message: "title exceeds maximum length"})
		}
	}
	if r.Description != nil {
		if *r.Description == "" {
			errs = append(errs, FieldError{Field: "description", Message: "description cannot be empty"})
		} else if utf8.RuneCountInString(*r.Description) > MaxEventDescriptionLength {
			errs = append(errs, FieldError{Field: "description", Message: "description exceeds maximum length"})
		}
	}
	if r.Date != nil && r.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "date cannot be empty"})
	}
	if r.Category != nil {
		if *r.Category == "" {
			errs = append(errs, FieldError{Field: "category", Message: "category cannot be empty"})
		} else if utf8.RuneCountInString(*r.Category) > MaxEventCategoryLength {
			errs = append(errs, FieldError{Field: "category", Message: "category exceeds maximum length"})
		}
	}
	return errs
}

// IsEmpty reports whether no fields were provided
func (r *UpdateEventRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Date == nil && r.Category == nil
}

// EventFilters holds the optional list filters for events.
// Category matches exactly, title matches as a substring; both are
// case-insensitive.
type EventFilters struct {
	Category *string
	Title    *string
}

// DeleteEventResult confirms an event deletion and reports how many
// RSVPs the cascade removed
type DeleteEventResult struct {
	Message      string `json:"message"`
	EventID      string `json:"event_id"`
	RSVPsDeleted int    `json:"rsvps_deleted"`
}
