package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and returns the record with its assigned id
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `CREATE event CONTENT {
		title: $title,
		description: $description,
		date: $date,
		category: $category,
		created_on: time::now(),
		updated_on: time::now()
	}`

	result, err := r.db.Query(ctx, query, map[string]interface{}{
		"title":       event.Title,
		"description": event.Description,
		"date":        event.Date,
		"category":    event.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to read created event: %w", err)
	}

	event.ID = created.ID
	event.CreatedOn = created.CreatedOn
	event.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves an event by ID. Returns (nil, nil) when no such record exists.
func (r *EventRepository) Get(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT * FROM type::record($event_id)`

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"event_id": id,
	})
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result format for event")
	}

	return mapEvent(data), nil
}

// Update applies the given field updates to an event and returns the
// record as it stands afterwards. Returns database.ErrNotFound when the
// event does not exist.
func (r *EventRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Event, error) {
	setClauses := []string{"updated_on = time::now()"}
	vars := map[string]interface{}{
		"event_id": id,
	}

	for _, key := range []string{"title", "description", "date", "category"} {
		if value, ok := updates[key]; ok {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%s", key, key))
			vars[key] = value
		}
	}

	query := fmt.Sprintf(
		`UPDATE event SET %s WHERE id = type::record($event_id) RETURN AFTER`,
		strings.Join(setClauses, ", "),
	)

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if err == database.ErrNotFound {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result format for event")
	}

	return mapEvent(data), nil
}

// List retrieves events matching the given filters, up to limit records.
// Category matches are case-insensitive exact, title matches are
// case-insensitive substring.
func (r *EventRepository) List(ctx context.Context, filters model.EventFilters, limit int) ([]*model.Event, error) {
	clauses := []string{}
	vars := map[string]interface{}{
		"limit": limit,
	}

	if filters.Category != nil {
		clauses = append(clauses, "string::lowercase(category) = string::lowercase($category)")
		vars["category"] = *filters.Category
	}
	if filters.Title != nil {
		clauses = append(clauses, "string::contains(string::lowercase(title), string::lowercase($title))")
		vars["title"] = *filters.Title
	}

	query := "SELECT * FROM event"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " LIMIT $limit"

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return mapEvents(result), nil
}

// CountRSVPs returns the number of RSVPs referencing the given event
func (r *EventRepository) CountRSVPs(ctx context.Context, eventID string) (int, error) {
	query := `SELECT count() as cnt FROM rsvp WHERE event_id = $event_id GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"event_id": eventID,
	})
	if err != nil {
		if err == database.ErrNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count rsvps: %w", err)
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "cnt"), nil
	}
	return 0, nil
}

// DeleteWithRSVPs deletes an event together with every RSVP that
// references it, in a single transaction so neither half can be lost.
func (r *EventRepository) DeleteWithRSVPs(ctx context.Context, eventID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE event WHERE id = type::record($event_id)`, map[string]interface{}{
		"event_id": eventID,
	})
	batch.Add(`DELETE rsvp WHERE event_id = $event_id`, map[string]interface{}{
		"event_id": eventID,
	})

	if err := batch.Execute(ctx, r.db); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// mapEvent converts a raw record map into an Event
func mapEvent(data map[string]interface{}) *model.Event {
	event := &model.Event{
		Title:       getString(data, "title"),
		Description: getString(data, "description"),
		Category:    getString(data, "category"),
	}

	if id, ok := data["id"]; ok {
		event.ID = convertSurrealID(id)
	}
	if t := getTime(data, "date"); t != nil {
		event.Date = *t
	}
	if t := getTime(data, "created_on"); t != nil {
		event.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		event.UpdatedOn = *t
	}

	return event
}

// mapEvents converts a query result into a slice of events
func mapEvents(result []interface{}) []*model.Event {
	events := []*model.Event{}
	for _, item := range result {
		resp, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		rows, ok := resp["result"].([]interface{})
		if !ok {
			// Result may already be a flat record
			events = append(events, mapEvent(resp))
			continue
		}
		for _, row := range rows {
			if data, ok := row.(map[string]interface{}); ok {
				events = append(events, mapEvent(data))
			}
		}
	}
	return events
}
