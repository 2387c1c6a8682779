package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/forgo/gather/internal/database"
)

// SeederService generates mock data for testing and development
type SeederService struct {
	db database.Database
}

// NewSeederService creates a new seeder service
func NewSeederService(db database.Database) *SeederService {
	return &SeederService{db: db}
}

// SeedEventsRequest configures event seeding
type SeedEventsRequest struct {
	Count    int    `json:"count"`
	Category string `json:"category,omitempty"` // If empty, categories are picked at random
	// Prefix for seeded event titles to identify them for cleanup
	Prefix string `json:"prefix,omitempty"`
}

// SeedRSVPsRequest configures RSVP seeding
type SeedRSVPsRequest struct {
	Count   int    `json:"count"`
	EventID string `json:"event_id,omitempty"` // If empty, RSVPs spread across seeded events
	Prefix  string `json:"prefix,omitempty"`
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	Created  int      `json:"created"`
	IDs      []string `json:"ids"`
	Duration int64    `json:"duration_ms"`
}

// CleanupResult contains the results of a cleanup operation
type CleanupResult struct {
	Duration int64 `json:"duration_ms"`
}

// StatsResult reports how many records each table holds, with events
// broken down by category
type StatsResult struct {
	Events           int            `json:"events"`
	RSVPs            int            `json:"rsvps"`
	EventsByCategory map[string]int `json:"events_by_category"`
}

// Sample data for realistic generation
var (
	eventTitles = []string{
		"Weekly Meetup", "Game Night", "Hiking Trip", "Coffee Chat",
		"Movie Night", "Dinner Party", "Beach Day", "Museum Visit",
		"Picnic in the Park", "Karaoke Night", "Trivia Tuesday", "Book Discussion",
		"Wine Tasting", "Cooking Class", "Art Workshop", "Photography Walk",
		"Yoga Session", "Running Club", "Cycling Adventure", "Board Game Marathon",
	}
	eventCategories = []string{
		"social", "outdoors", "food", "arts", "fitness", "games", "tech", "music",
	}
	eventDescriptions = []string{
		"Come join us for a relaxed get-together.",
		"All skill levels welcome, bring a friend!",
		"A chance to meet new people and try something different.",
		"Casual and friendly, no experience needed.",
		"Snacks provided, good company guaranteed.",
	}
	userNames = []string{
		"Emma Smith", "Liam Johnson", "Olivia Williams", "Noah Brown",
		"Ava Jones", "Ethan Garcia", "Sophia Miller", "Mason Davis",
		"Isabella Rodriguez", "William Martinez", "Mia Hernandez", "James Lopez",
		"Charlotte Gonzalez", "Benjamin Wilson", "Amelia Anderson", "Lucas Thomas",
	}
)

// SeedEvents creates mock events
func (s *SeederService) SeedEvents(ctx context.Context, req SeedEventsRequest) (*SeedResult, error) {
	start := time.Now()

	if req.Count <= 0 || req.Count > 1000 {
		return nil, fmt.Errorf("count must be between 1 and 1000")
	}

	if req.Prefix == "" {
		req.Prefix = "seed_"
	}

	ids := make([]string, 0, req.Count)

	for i := 0; i < req.Count; i++ {
		title := fmt.Sprintf("%s%s", req.Prefix, eventTitles[mrand.IntN(len(eventTitles))])
		description := eventDescriptions[mrand.IntN(len(eventDescriptions))]
		category := req.Category
		if category == "" {
			category = eventCategories[mrand.IntN(len(eventCategories))]
		}
		date := time.Now().UTC().Add(time.Duration(mrand.IntN(30)+1) * 24 * time.Hour)

		query := `
			CREATE event CONTENT {
				title: $title,
				description: $description,
				date: $date,
				category: $category,
				created_on: time::now(),
				updated_on: time::now()
			}
		`
		results, err := s.db.Query(ctx, query, map[string]interface{}{
			"title":       title,
			"description": description,
			"date":        date,
			"category":    category,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create event: %w", err)
		}

		eventID := extractID(results)
		if eventID == "" {
			return nil, fmt.Errorf("failed to extract event ID")
		}
		ids = append(ids, eventID)
	}

	return &SeedResult{
		Created:  len(ids),
		IDs:      ids,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// SeedRSVPs creates mock RSVPs against seeded events
func (s *SeederService) SeedRSVPs(ctx context.Context, req SeedRSVPsRequest) (*SeedResult, error) {
	start := time.Now()

	if req.Count <= 0 || req.Count > 1000 {
		return nil, fmt.Errorf("count must be between 1 and 1000")
	}

	if req.Prefix == "" {
		req.Prefix = "seed_"
	}

	var eventIDs []string
	if req.EventID != "" {
		eventIDs = []string{req.EventID}
	} else {
		eventQuery := `SELECT id FROM event WHERE title CONTAINS $prefix LIMIT 100`
		eventResults, err := s.db.Query(ctx, eventQuery, map[string]interface{}{
			"prefix": req.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query events: %w", err)
		}
		eventIDs = extractIDs(eventResults)
	}

	if len(eventIDs) == 0 {
		// Create an event first
		eventResult, err := s.SeedEvents(ctx, SeedEventsRequest{
			Count:  1,
			Prefix: req.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed event for rsvps: %w", err)
		}
		eventIDs = eventResult.IDs
	}

	ids := make([]string, 0, req.Count)

	for i := 0; i < req.Count; i++ {
		eventID := eventIDs[i%len(eventIDs)]
		name := userNames[mrand.IntN(len(userNames))]
		// Random local part keeps the unique email/event index happy
		email := fmt.Sprintf("%s%s@test.local", req.Prefix, randomID())

		query := `
			CREATE rsvp CONTENT {
				user_name: $user_name,
				email: $email,
				event_id: $event_id,
				created_at: time::now()
			}
		`
		results, err := s.db.Query(ctx, query, map[string]interface{}{
			"user_name": name,
			"email":     email,
			"event_id":  eventID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create rsvp: %w", err)
		}

		if rsvpID := extractID(results); rsvpID != "" {
			ids = append(ids, rsvpID)
		}
	}

	return &SeedResult{
		Created:  len(ids),
		IDs:      ids,
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// Cleanup removes all seeded data with the given prefix
func (s *SeederService) Cleanup(ctx context.Context, prefix string) (*CleanupResult, error) {
	start := time.Now()

	if prefix == "" {
		prefix = "seed_"
	}

	vars := map[string]interface{}{"prefix": prefix}

	if err := s.db.Execute(ctx, `DELETE rsvp WHERE email CONTAINS $prefix`, vars); err != nil {
		return nil, fmt.Errorf("failed to delete rsvps: %w", err)
	}

	if err := s.db.Execute(ctx, `DELETE event WHERE title CONTAINS $prefix`, vars); err != nil {
		return nil, fmt.Errorf("failed to delete events: %w", err)
	}

	return &CleanupResult{
		Duration: time.Since(start).Milliseconds(),
	}, nil
}

// Stats reports record counts per table and events per category
func (s *SeederService) Stats(ctx context.Context) (*StatsResult, error) {
	stats := &StatsResult{
		EventsByCategory: map[string]int{},
	}

	eventResults, err := s.db.Query(ctx, `SELECT count() AS cnt FROM event GROUP ALL`, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	stats.Events = extractCount(eventResults)

	rsvpResults, err := s.db.Query(ctx, `SELECT count() AS cnt FROM rsvp GROUP ALL`, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count rsvps: %w", err)
	}
	stats.RSVPs = extractCount(rsvpResults)

	catResults, err := s.db.Query(ctx, `SELECT category, count() AS cnt FROM event GROUP BY category`, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count events by category: %w", err)
	}
	for _, row := range extractRows(catResults) {
		if category, ok := row["category"].(string); ok {
			stats.EventsByCategory[category] = toInt(row["cnt"])
		}
	}

	return stats, nil
}

// Helper functions

func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func extractID(results []interface{}) string {
	rows := extractRows(results)
	if len(rows) == 0 {
		return ""
	}
	return formatID(rows[0]["id"])
}

func extractIDs(results []interface{}) []string {
	var ids []string
	for _, row := range extractRows(results) {
		if id := formatID(row["id"]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func extractCount(results []interface{}) int {
	rows := extractRows(results)
	if len(rows) == 0 {
		return 0
	}
	return toInt(rows[0]["cnt"])
}

func extractRows(results []interface{}) []map[string]interface{} {
	var rows []map[string]interface{}
	if len(results) == 0 {
		return rows
	}

	resp, ok := results[0].(map[string]interface{})
	if !ok {
		return rows
	}

	result, ok := resp["result"]
	if !ok {
		return rows
	}

	if arr, ok := result.([]interface{}); ok {
		for _, item := range arr {
			if data, ok := item.(map[string]interface{}); ok {
				rows = append(rows, data)
			}
		}
		return rows
	}

	if data, ok := result.(map[string]interface{}); ok {
		rows = append(rows, data)
	}
	return rows
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	}
	return 0
}

func formatID(v interface{}) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	// Handle SurrealDB 3 record ID type
	if m, ok := v.(map[string]interface{}); ok {
		if tb, ok := m["tb"].(string); ok {
			if id := m["id"]; id != nil {
				return fmt.Sprintf("%s:%v", tb, id)
			}
		}
	}

	// Fallback: convert "{table id}" to "table:id"
	s := fmt.Sprintf("%v", v)
	if len(s) > 2 && s[0] == '{' && s[len(s)-1] == '}' {
		inner := s[1 : len(s)-1]
		for i, c := range inner {
			if c == ' ' {
				return inner[:i] + ":" + inner[i+1:]
			}
		}
	}
	return s
}
