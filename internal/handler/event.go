package handler

import (
	"context"
	"net/http"

	"github.com/forgo/gather/internal/model"
)

// EventService defines the event operations the handler needs
type EventService interface {
	CreateEvent(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListEvents(ctx context.Context, filters model.EventFilters) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, id string, req *model.UpdateEventRequest) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) (*model.DeleteEventResult, error)
}

// EventHandler handles event endpoints
type EventHandler struct {
	service EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, event)
}

// Get handles GET /events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.service.GetEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, event)
}

// List handles GET /events with optional category and title filters
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := model.EventFilters{}
	if category := r.URL.Query().Get("category"); category != "" {
		filters.Category = &category
	}
	if title := r.URL.Query().Get("title"); title != "" {
		filters.Title = &title
	}

	events, err := h.service.ListEvents(r.Context(), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, events, len(events))
}

// Update handles PUT /events/{id}. The request body is a merge patch:
// only fields present in the body are applied to the stored record.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, event)
}

// Delete handles DELETE /events/{id}. The response body reports how
// many RSVPs were removed with the event.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
