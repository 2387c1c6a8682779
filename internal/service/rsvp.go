package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/model"
)

// RSVPRepository defines the RSVP data access the service needs
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *model.RSVP) error
	Get(ctx context.Context, id string) (*model.RSVP, error)
	List(ctx context.Context, filters model.RSVPFilters, limit int) ([]*model.RSVP, error)
	ListByEvent(ctx context.Context, eventID string, limit int) ([]*model.RSVP, error)
	FindByEmailAndEvent(ctx context.Context, email, eventID string) (*model.RSVP, error)
	Delete(ctx context.Context, id string) error
}

// EventGetter is the slice of the event repository RSVPs need to check
// that a referenced event exists
type EventGetter interface {
	Get(ctx context.Context, id string) (*model.Event, error)
}

// RSVPService implements RSVP business logic
type RSVPService struct {
	repo   RSVPRepository
	events EventGetter
	logger *slog.Logger
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(repo RSVPRepository, events EventGetter, logger *slog.Logger) *RSVPService {
	return &RSVPService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// CreateRSVP records an RSVP for an event. The referenced event must
// exist and the email must not already hold an RSVP for it.
func (s *RSVPService) CreateRSVP(ctx context.Context, req *model.CreateRSVPRequest) (*model.RSVP, error) {
	if !model.IsValidRecordID(req.EventID, "event") {
		return nil, ErrInvalidEventID
	}

	event, err := s.events.Get(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	existing, err := s.repo.FindByEmailAndEvent(ctx, req.Email, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing rsvp: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRSVPd
	}

	rsvp := &model.RSVP{
		UserName:  req.UserName,
		Email:     req.Email,
		EventID:   req.EventID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, rsvp); err != nil {
		// The unique index catches the insert that lost a concurrent race
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyRSVPd
		}
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	s.logger.Info("rsvp created", "rsvp_id", rsvp.ID, "event_id", rsvp.EventID)
	return rsvp, nil
}

// GetRSVP retrieves an RSVP by ID
func (s *RSVPService) GetRSVP(ctx context.Context, id string) (*model.RSVP, error) {
	if !model.IsValidRecordID(id, "rsvp") {
		return nil, ErrInvalidRSVPID
	}

	rsvp, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}
	if rsvp == nil {
		return nil, ErrRSVPNotFound
	}
	return rsvp, nil
}

// ListRSVPs retrieves RSVPs matching the given filters, capped at
// MaxRSVPResults
func (s *RSVPService) ListRSVPs(ctx context.Context, filters model.RSVPFilters) ([]*model.RSVP, error) {
	rsvps, err := s.repo.List(ctx, filters, model.MaxRSVPResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}
	return rsvps, nil
}

// ListRSVPsForEvent retrieves every RSVP for an event. The event must
// exist.
func (s *RSVPService) ListRSVPsForEvent(ctx context.Context, eventID string) ([]*model.RSVP, error) {
	if !model.IsValidRecordID(eventID, "event") {
		return nil, ErrInvalidEventID
	}

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	rsvps, err := s.repo.ListByEvent(ctx, eventID, model.MaxRSVPResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps for event: %w", err)
	}
	return rsvps, nil
}

// DeleteRSVP removes an RSVP by ID
func (s *RSVPService) DeleteRSVP(ctx context.Context, id string) (*model.DeleteRSVPResult, error) {
	if !model.IsValidRecordID(id, "rsvp") {
		return nil, ErrInvalidRSVPID
	}

	rsvp, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}
	if rsvp == nil {
		return nil, ErrRSVPNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete rsvp: %w", err)
	}

	s.logger.Info("rsvp deleted", "rsvp_id", id, "event_id", rsvp.EventID)
	return &model.DeleteRSVPResult{Message: "rsvp deleted", RSVPID: id}, nil
}
