// Package handler contains the HTTP handlers for the Gather API.
//
// Handlers decode and validate request payloads, call services, and
// render responses. Validation failures return RFC 9457 problem
// details with one field error per violation; service errors pass
// through MapServiceError so every handler maps the same error to the
// same status.
package handler
