// Package model defines domain entities and data structures for the Gather API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
//   - Event: a scheduled gathering with a title, description, date, and category
//   - RSVP: a person's registration for an event, referencing it by id
//
// RSVPs reference events by string id rather than by a structural link; the
// service layer validates the reference at creation time and the event delete
// path cascades to matching RSVPs.
//
// # Validation
//
// Request types carry a Validate method returning []FieldError, which handlers
// surface as RFC 9457 Problem Details (errors.go) with a 422 status. Length
// constants such as MaxEventTitleLength live next to the entity they bound.
package model
