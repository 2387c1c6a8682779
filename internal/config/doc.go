// Package config loads application configuration from environment
// variables, with a .env file as a convenience for local development.
// Every setting has a default that works against a local SurrealDB, so
// a bare `go run ./cmd/server` starts without any environment at all.
package config
