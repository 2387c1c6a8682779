package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/gather/internal/database"
	"github.com/forgo/gather/internal/model"
)

// RSVPRepository handles RSVP data access
type RSVPRepository struct {
	db database.Database
}

// NewRSVPRepository creates a new RSVP repository
func NewRSVPRepository(db database.Database) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Create inserts a new RSVP and returns the record with its assigned id.
// The rsvp_email_event unique index rejects a second RSVP for the same
// email and event, which Create surfaces as database.ErrDuplicate.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *model.RSVP) error {
	query := `CREATE rsvp CONTENT {
		user_name: $user_name,
		email: $email,
		event_id: $event_id,
		created_at: $created_at
	}`

	result, err := r.db.Query(ctx, query, map[string]interface{}{
		"user_name":  rsvp.UserName,
		"email":      rsvp.Email,
		"event_id":   rsvp.EventID,
		"created_at": rsvp.CreatedAt,
	})
	if err != nil {
		if isUniqueConstraintError(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("failed to create rsvp: %w", err)
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return fmt.Errorf("failed to read created rsvp: %w", err)
	}

	rsvp.ID = created.ID
	if !created.CreatedOn.IsZero() {
		rsvp.CreatedAt = created.CreatedOn
	}
	return nil
}

// Get retrieves an RSVP by ID. Returns (nil, nil) when no such record exists.
func (r *RSVPRepository) Get(ctx context.Context, id string) (*model.RSVP, error) {
	query := `SELECT * FROM type::record($rsvp_id)`

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"rsvp_id": id,
	})
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result format for rsvp")
	}

	return mapRSVP(data), nil
}

// List retrieves RSVPs matching the given filters, up to limit records.
// Both filters are case-insensitive exact matches.
func (r *RSVPRepository) List(ctx context.Context, filters model.RSVPFilters, limit int) ([]*model.RSVP, error) {
	clauses := []string{}
	vars := map[string]interface{}{
		"limit": limit,
	}

	if filters.UserName != nil {
		clauses = append(clauses, "string::lowercase(user_name) = string::lowercase($user_name)")
		vars["user_name"] = *filters.UserName
	}
	if filters.Email != nil {
		clauses = append(clauses, "string::lowercase(email) = string::lowercase($email)")
		vars["email"] = *filters.Email
	}

	query := "SELECT * FROM rsvp"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " LIMIT $limit"

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}

	return mapRSVPs(result), nil
}

// ListByEvent retrieves RSVPs for a specific event, up to limit records
func (r *RSVPRepository) ListByEvent(ctx context.Context, eventID string, limit int) ([]*model.RSVP, error) {
	query := `SELECT * FROM rsvp WHERE event_id = $event_id LIMIT $limit`

	result, err := r.db.Query(ctx, query, map[string]interface{}{
		"event_id": eventID,
		"limit":    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps for event: %w", err)
	}

	return mapRSVPs(result), nil
}

// FindByEmailAndEvent looks up an RSVP by its email and event pair.
// Returns (nil, nil) when none exists.
func (r *RSVPRepository) FindByEmailAndEvent(ctx context.Context, email, eventID string) (*model.RSVP, error) {
	query := `SELECT * FROM rsvp WHERE email = $email AND event_id = $event_id LIMIT 1`

	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{
		"email":    email,
		"event_id": eventID,
	})
	if err != nil {
		if err == database.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rsvp: %w", err)
	}
	if result == nil {
		return nil, nil
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result format for rsvp")
	}

	return mapRSVP(data), nil
}

// Delete removes an RSVP by ID
func (r *RSVPRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM rsvp WHERE id = type::record($rsvp_id)`

	if _, err := r.db.Query(ctx, query, map[string]interface{}{
		"rsvp_id": id,
	}); err != nil {
		return fmt.Errorf("failed to delete rsvp: %w", err)
	}
	return nil
}

// mapRSVP converts a raw record map into an RSVP
func mapRSVP(data map[string]interface{}) *model.RSVP {
	rsvp := &model.RSVP{
		UserName: getString(data, "user_name"),
		Email:    getString(data, "email"),
		EventID:  getString(data, "event_id"),
	}

	if id, ok := data["id"]; ok {
		rsvp.ID = convertSurrealID(id)
	}
	if t := getTime(data, "created_at"); t != nil {
		rsvp.CreatedAt = *t
	}

	return rsvp
}

// mapRSVPs converts a query result into a slice of RSVPs
func mapRSVPs(result []interface{}) []*model.RSVP {
	rsvps := []*model.RSVP{}
	for _, item := range result {
		resp, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		rows, ok := resp["result"].([]interface{})
		if !ok {
			rsvps = append(rsvps, mapRSVP(resp))
			continue
		}
		for _, row := range rows {
			if data, ok := row.(map[string]interface{}); ok {
				rsvps = append(rsvps, mapRSVP(data))
			}
		}
	}
	return rsvps
}
