// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities through the repository layer
// with sensible defaults while allowing customization via option
// functions, and returns fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	event := f.CreateEvent(t)
//	rsvp := f.CreateRSVP(t, event)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/model"
	"github.com/forgo/gather/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	events *repository.EventRepository
	rsvps  *repository.RSVPRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		events: repository.NewEventRepository(db),
		rsvps:  repository.NewRSVPRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_ = cancel
	return c
}

// EventOption customizes a fixture event
type EventOption func(*model.Event)

// WithTitle sets the event title
func WithTitle(title string) EventOption {
	return func(e *model.Event) { e.Title = title }
}

// WithCategory sets the event category
func WithCategory(category string) EventOption {
	return func(e *model.Event) { e.Category = category }
}

// WithDate sets the event date
func WithDate(date time.Time) EventOption {
	return func(e *model.Event) { e.Date = date }
}

// CreateEvent creates an event with sensible defaults
func (f *Factory) CreateEvent(t *testing.T, opts ...EventOption) *model.Event {
	t.Helper()

	event := &model.Event{
		Title:       fmt.Sprintf("Fixture Event %s", randomID()),
		Description: "An event created by the test fixture factory.",
		Date:        time.Now().UTC().Add(7 * 24 * time.Hour),
		Category:    "social",
	}
	for _, opt := range opts {
		opt(event)
	}

	if err := f.events.Create(ctx(), event); err != nil {
		t.Fatalf("fixtures: failed to create event: %v", err)
	}
	return event
}

// RSVPOption customizes a fixture RSVP
type RSVPOption func(*model.RSVP)

// WithEmail sets the RSVP email
func WithEmail(email string) RSVPOption {
	return func(r *model.RSVP) { r.Email = email }
}

// WithUserName sets the RSVP user name
func WithUserName(name string) RSVPOption {
	return func(r *model.RSVP) { r.UserName = name }
}

// CreateRSVP creates an RSVP against the given event
func (f *Factory) CreateRSVP(t *testing.T, event *model.Event, opts ...RSVPOption) *model.RSVP {
	t.Helper()

	rsvp := &model.RSVP{
		UserName:  "Fixture Person",
		Email:     fmt.Sprintf("fixture_%s@test.local", randomID()),
		EventID:   event.ID,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(rsvp)
	}

	if err := f.rsvps.Create(ctx(), rsvp); err != nil {
		t.Fatalf("fixtures: failed to create rsvp: %v", err)
	}
	return rsvp
}
