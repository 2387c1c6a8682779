package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/model"
)

// EventRepository defines the event data access the service needs
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Event, error)
	List(ctx context.Context, filters model.EventFilters, limit int) ([]*model.Event, error)
	CountRSVPs(ctx context.Context, eventID string) (int, error)
	DeleteWithRSVPs(ctx context.Context, eventID string) error
}

// EventService implements event business logic
type EventService struct {
	repo   EventRepository
	logger *slog.Logger
}

// NewEventService creates a new event service
func NewEventService(repo EventRepository, logger *slog.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

// CreateEvent creates a new event and returns it as stored, including
// the assigned id and timestamps
func (s *EventService) CreateEvent(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	// Read the record back so the caller sees exactly what was stored
	stored, err := s.repo.Get(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back created event: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("created event %s not found on read-back", event.ID)
	}

	s.logger.Info("event created", "event_id", stored.ID, "category", stored.Category)
	return stored, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	if !model.IsValidRecordID(id, "event") {
		return nil, ErrInvalidEventID
	}

	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// ListEvents retrieves events matching the given filters, capped at
// MaxEventResults
func (s *EventService) ListEvents(ctx context.Context, filters model.EventFilters) ([]*model.Event, error) {
	events, err := s.repo.List(ctx, filters, model.MaxEventResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpdateEvent applies a partial update to an event and returns the
// updated record
func (s *EventService) UpdateEvent(ctx context.Context, id string, req *model.UpdateEventRequest) (*model.Event, error) {
	if !model.IsValidRecordID(id, "event") {
		return nil, ErrInvalidEventID
	}
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	event, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.logger.Info("event updated", "event_id", id)
	return event, nil
}

// DeleteEvent removes an event and cascades to its RSVPs. The returned
// result reports how many RSVPs were removed alongside the event.
func (s *EventService) DeleteEvent(ctx context.Context, id string) (*model.DeleteEventResult, error) {
	if !model.IsValidRecordID(id, "event") {
		return nil, ErrInvalidEventID
	}

	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	count, err := s.repo.CountRSVPs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count rsvps: %w", err)
	}

	if err := s.repo.DeleteWithRSVPs(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	s.logger.Info("event deleted", "event_id", id, "rsvps_deleted", count)
	return &model.DeleteEventResult{
		Message:      "event deleted",
		EventID:      id,
		RSVPsDeleted: count,
	}, nil
}
