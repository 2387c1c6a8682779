package handler

import (
	"context"
	"net/http"
)

// Pinger reports whether the database connection is alive
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness and readiness endpoints
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health. It reports degraded with a 503 when the
// database does not respond.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"reason": "database unreachable",
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Root handles GET /. It returns a short service description so the bare
// host answers with something useful instead of a 404.
func Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"service": "gather",
		"message": "event and RSVP API",
		"endpoints": map[string]string{
			"health": "/health",
			"events": "/events",
			"rsvps":  "/rsvps",
		},
	})
}
