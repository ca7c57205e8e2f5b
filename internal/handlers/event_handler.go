package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-pop/internal/services"
	"campus-pop/models"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func requireOrganizer(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Authentication required", nil)
	}
	if e.Auth.GetString("role") != "organizer" {
		return apis.NewForbiddenError("Only organizers can manage events", nil)
	}
	return nil
}

func (h *EventHandler) Create(e *core.RequestEvent) error {
	if err := requireOrganizer(e); err != nil {
		return err
	}

	var draft models.EventDraft
	if err := e.BindBody(&draft); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	event, err := h.eventService.Create(e.Request.Context(), e.Auth.Id, draft)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(e *core.RequestEvent) error {
	if err := requireOrganizer(e); err != nil {
		return err
	}

	eventID := e.Request.PathValue("eventId")
	if eventID == "" {
		return apis.NewBadRequestError("Event ID required", nil)
	}

	var draft models.EventDraft
	if err := e.BindBody(&draft); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	event, err := h.eventService.Update(e.Request.Context(), e.Auth.Id, eventID, draft)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(e *core.RequestEvent) error {
	if err := requireOrganizer(e); err != nil {
		return err
	}

	eventID := e.Request.PathValue("eventId")
	if eventID == "" {
		return apis.NewBadRequestError("Event ID required", nil)
	}

	if err := h.eventService.Delete(e.Request.Context(), e.Auth.Id, eventID); err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{"message": "Event deleted"})
}

// Mine lists the authenticated organizer's own events for the dashboard.
func (h *EventHandler) Mine(e *core.RequestEvent) error {
	if err := requireOrganizer(e); err != nil {
		return err
	}

	events, err := h.eventService.ByCreator(e.Request.Context(), e.Auth.Id)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"events": events,
		"total":  len(events),
	})
}
