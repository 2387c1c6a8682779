package handler

import (
	"context"
	"net/http"

	"github.com/forgo/gather/internal/model"
)

// RSVPService defines the RSVP operations the handler needs
type RSVPService interface {
	CreateRSVP(ctx context.Context, req *model.CreateRSVPRequest) (*model.RSVP, error)
	GetRSVP(ctx context.Context, id string) (*model.RSVP, error)
	ListRSVPs(ctx context.Context, filters model.RSVPFilters) ([]*model.RSVP, error)
	ListRSVPsForEvent(ctx context.Context, eventID string) ([]*model.RSVP, error)
	DeleteRSVP(ctx context.Context, id string) (*model.DeleteRSVPResult, error)
}

// RSVPHandler handles RSVP endpoints
type RSVPHandler struct {
	service RSVPService
}

// NewRSVPHandler creates a new RSVP handler
func NewRSVPHandler(service RSVPService) *RSVPHandler {
	return &RSVPHandler{service: service}
}

// Create handles POST /rsvps
func (h *RSVPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRSVPRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	rsvp, err := h.service.CreateRSVP(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, rsvp)
}

// Get handles GET /rsvps/{id}
func (h *RSVPHandler) Get(w http.ResponseWriter, r *http.Request) {
	rsvp, err := h.service.GetRSVP(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, rsvp)
}

// List handles GET /rsvps with optional user_name and email filters
func (h *RSVPHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := model.RSVPFilters{}
	if userName := r.URL.Query().Get("user_name"); userName != "" {
		filters.UserName = &userName
	}
	if email := r.URL.Query().Get("email"); email != "" {
		filters.Email = &email
	}

	rsvps, err := h.service.ListRSVPs(r.Context(), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, rsvps, len(rsvps))
}

// ListForEvent handles GET /rsvps/event/{event_id}
func (h *RSVPHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	rsvps, err := h.service.ListRSVPsForEvent(r.Context(), r.PathValue("event_id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, rsvps, len(rsvps))
}

// Delete handles DELETE /rsvps/{id}
func (h *RSVPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteRSVP(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
