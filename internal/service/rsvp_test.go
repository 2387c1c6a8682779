package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/model"
)

// ===== Mock RSVP repository =====

type mockRSVPRepo struct {
	createFunc              func(ctx context.Context, rsvp *model.RSVP) error
	getFunc                 func(ctx context.Context, id string) (*model.RSVP, error)
	listFunc                func(ctx context.Context, filters model.RSVPFilters, limit int) ([]*model.RSVP, error)
	listByEventFunc         func(ctx context.Context, eventID string, limit int) ([]*model.RSVP, error)
	findByEmailAndEventFunc func(ctx context.Context, email, eventID string) (*model.RSVP, error)
	deleteFunc              func(ctx context.Context, id string) error
}

func (m *mockRSVPRepo) Create(ctx context.Context, rsvp *model.RSVP) error {
	return m.createFunc(ctx, rsvp)
}

func (m *mockRSVPRepo) Get(ctx context.Context, id string) (*model.RSVP, error) {
	return m.getFunc(ctx, id)
}

func (m *mockRSVPRepo) List(ctx context.Context, filters model.RSVPFilters, limit int) ([]*model.RSVP, error) {
	return m.listFunc(ctx, filters, limit)
}

func (m *mockRSVPRepo) ListByEvent(ctx context.Context, eventID string, limit int) ([]*model.RSVP, error) {
	return m.listByEventFunc(ctx, eventID, limit)
}

func (m *mockRSVPRepo) FindByEmailAndEvent(ctx context.Context, email, eventID string) (*model.RSVP, error) {
	return m.findByEmailAndEventFunc(ctx, email, eventID)
}

func (m *mockRSVPRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

type mockEventGetter struct {
	getFunc func(ctx context.Context, id string) (*model.Event, error)
}

func (m *mockEventGetter) Get(ctx context.Context, id string) (*model.Event, error) {
	return m.getFunc(ctx, id)
}

func existingEvent() *mockEventGetter {
	return &mockEventGetter{
		getFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return sampleEvent(id), nil
		},
	}
}

func validCreateRSVPRequest() *model.CreateRSVPRequest {
	return &model.CreateRSVPRequest{
		UserName: "Emma Smith",
		Email:    "emma@example.com",
		EventID:  "event:abc123",
	}
}

// ===== CreateRSVP =====

func TestCreateRSVP_Success_StampsCreatedAt(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		findByEmailAndEventFunc: func(ctx context.Context, email, eventID string) (*model.RSVP, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, rsvp *model.RSVP) error {
			if rsvp.CreatedAt.IsZero() {
				t.Error("expected created_at to be stamped before insert")
			}
			if rsvp.CreatedAt.Location() != nil && rsvp.CreatedAt.Location().String() != "UTC" {
				t.Errorf("expected UTC timestamp, got %s", rsvp.CreatedAt.Location())
			}
			rsvp.ID = "rsvp:xyz789"
			return nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	rsvp, err := svc.CreateRSVP(context.Background(), validCreateRSVPRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsvp.ID != "rsvp:xyz789" {
		t.Errorf("expected rsvp:xyz789, got %s", rsvp.ID)
	}
	if rsvp.EventID != "event:abc123" {
		t.Errorf("expected event reference preserved, got %s", rsvp.EventID)
	}
}

func TestCreateRSVP_EventMissing_ReturnsEventNotFound(t *testing.T) {
	t.Parallel()

	events := &mockEventGetter{
		getFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return nil, nil
		},
	}
	svc := NewRSVPService(&mockRSVPRepo{}, events, testLogger())

	_, err := svc.CreateRSVP(context.Background(), validCreateRSVPRequest())
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestCreateRSVP_MalformedEventID_ReturnsInvalidID(t *testing.T) {
	t.Parallel()

	svc := NewRSVPService(&mockRSVPRepo{}, existingEvent(), testLogger())

	req := validCreateRSVPRequest()
	req.EventID = "whatever"
	_, err := svc.CreateRSVP(context.Background(), req)
	if !errors.Is(err, ErrInvalidEventID) {
		t.Errorf("expected ErrInvalidEventID, got %v", err)
	}
}

func TestCreateRSVP_DuplicateEmail_ReturnsAlreadyRSVPd(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		findByEmailAndEventFunc: func(ctx context.Context, email, eventID string) (*model.RSVP, error) {
			return &model.RSVP{ID: "rsvp:existing", Email: email, EventID: eventID}, nil
		},
		createFunc: func(ctx context.Context, rsvp *model.RSVP) error {
			t.Error("create should not be called when an rsvp already exists")
			return nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	_, err := svc.CreateRSVP(context.Background(), validCreateRSVPRequest())
	if !errors.Is(err, ErrAlreadyRSVPd) {
		t.Errorf("expected ErrAlreadyRSVPd, got %v", err)
	}
}

func TestCreateRSVP_RacedDuplicateInsert_ReturnsAlreadyRSVPd(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		findByEmailAndEventFunc: func(ctx context.Context, email, eventID string) (*model.RSVP, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, rsvp *model.RSVP) error {
			return database.ErrDuplicate
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	_, err := svc.CreateRSVP(context.Background(), validCreateRSVPRequest())
	if !errors.Is(err, ErrAlreadyRSVPd) {
		t.Errorf("expected ErrAlreadyRSVPd, got %v", err)
	}
}

// ===== GetRSVP =====

func TestGetRSVP_Found_ReturnsRSVP(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		getFunc: func(ctx context.Context, id string) (*model.RSVP, error) {
			return &model.RSVP{ID: id, UserName: "Emma Smith"}, nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	rsvp, err := svc.GetRSVP(context.Background(), "rsvp:xyz789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsvp.ID != "rsvp:xyz789" {
		t.Errorf("expected rsvp:xyz789, got %s", rsvp.ID)
	}
}

func TestGetRSVP_Missing_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		getFunc: func(ctx context.Context, id string) (*model.RSVP, error) {
			return nil, nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	_, err := svc.GetRSVP(context.Background(), "rsvp:missing")
	if !errors.Is(err, ErrRSVPNotFound) {
		t.Errorf("expected ErrRSVPNotFound, got %v", err)
	}
}

func TestGetRSVP_MalformedID_ReturnsInvalidID(t *testing.T) {
	t.Parallel()

	svc := NewRSVPService(&mockRSVPRepo{}, existingEvent(), testLogger())

	_, err := svc.GetRSVP(context.Background(), "event:abc123")
	if !errors.Is(err, ErrInvalidRSVPID) {
		t.Errorf("expected ErrInvalidRSVPID, got %v", err)
	}
}

// ===== ListRSVPs =====

func TestListRSVPs_PassesFiltersAndCap(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		listFunc: func(ctx context.Context, filters model.RSVPFilters, limit int) ([]*model.RSVP, error) {
			if limit != model.MaxRSVPResults {
				t.Errorf("expected limit %d, got %d", model.MaxRSVPResults, limit)
			}
			if filters.Email == nil || *filters.Email != "emma@example.com" {
				t.Error("expected email filter to be forwarded")
			}
			return []*model.RSVP{{ID: "rsvp:xyz789"}}, nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	rsvps, err := svc.ListRSVPs(context.Background(), model.RSVPFilters{Email: strPtr("emma@example.com")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsvps) != 1 {
		t.Errorf("expected 1 rsvp, got %d", len(rsvps))
	}
}

// ===== ListRSVPsForEvent =====

func TestListRSVPsForEvent_EventExists_ReturnsRSVPs(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		listByEventFunc: func(ctx context.Context, eventID string, limit int) ([]*model.RSVP, error) {
			if eventID != "event:abc123" {
				t.Errorf("expected event:abc123, got %s", eventID)
			}
			return []*model.RSVP{{ID: "rsvp:one"}, {ID: "rsvp:two"}}, nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	rsvps, err := svc.ListRSVPsForEvent(context.Background(), "event:abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsvps) != 2 {
		t.Errorf("expected 2 rsvps, got %d", len(rsvps))
	}
}

func TestListRSVPsForEvent_EventMissing_ReturnsEventNotFound(t *testing.T) {
	t.Parallel()

	events := &mockEventGetter{
		getFunc: func(ctx context.Context, id string) (*model.Event, error) {
			return nil, nil
		},
	}
	svc := NewRSVPService(&mockRSVPRepo{}, events, testLogger())

	_, err := svc.ListRSVPsForEvent(context.Background(), "event:missing")
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

// ===== DeleteRSVP =====

func TestDeleteRSVP_Found_Deletes(t *testing.T) {
	t.Parallel()

	deleted := false
	repo := &mockRSVPRepo{
		getFunc: func(ctx context.Context, id string) (*model.RSVP, error) {
			return &model.RSVP{ID: id, EventID: "event:abc123"}, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	result, err := svc.DeleteRSVP(context.Background(), "rsvp:xyz789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to be called")
	}
	if result.Message == "" {
		t.Error("expected a confirmation message")
	}
	if result.RSVPID != "rsvp:xyz789" {
		t.Errorf("expected rsvp id in result, got %q", result.RSVPID)
	}
}

func TestDeleteRSVP_Missing_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	repo := &mockRSVPRepo{
		getFunc: func(ctx context.Context, id string) (*model.RSVP, error) {
			return nil, nil
		},
	}
	svc := NewRSVPService(repo, existingEvent(), testLogger())

	_, err := svc.DeleteRSVP(context.Background(), "rsvp:missing")
	if !errors.Is(err, ErrRSVPNotFound) {
		t.Errorf("expected ErrRSVPNotFound, got %v", err)
	}
}
