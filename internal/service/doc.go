// Package service implements the business logic for events and RSVPs.
//
// Services sit between handlers and repositories: they validate
// identifiers, enforce referential integrity and duplicate rules, and
// translate repository failures into the sentinel errors defined in
// errors.go so handlers can map them to HTTP statuses without knowing
// anything about the store.
package service
