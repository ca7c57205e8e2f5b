package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-pop/internal/services"
	"campus-pop/monitoring"
)

type ParticipationHandler struct {
	participationService *services.ParticipationService
	monitor              *monitoring.Monitor
}

func NewParticipationHandler(participationService *services.ParticipationService, monitor *monitoring.Monitor) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
		monitor:              monitor,
	}
}

// Toggle flips the requested status for the authenticated user. The auth
// check runs before anything touches the store, and the response carries only
// what the store confirmed.
func (h *ParticipationHandler) Toggle(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Authentication required", nil)
	}

	var req struct {
		EventID string `json:"event_id"`
		Status  string `json:"status"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.EventID == "" {
		return apis.NewBadRequestError("Event ID required", nil)
	}

	outcome, err := h.participationService.SetParticipation(e.Request.Context(), e.Auth.Id, req.EventID, req.Status)
	if err != nil {
		h.monitor.TrackParticipation(req.Status, "error")
		return apiError(err)
	}
	h.monitor.TrackParticipation(req.Status, "ok")

	return e.JSON(http.StatusOK, outcome)
}

// Get reports the caller's stored status for one event ("" when none).
func (h *ParticipationHandler) Get(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Authentication required", nil)
	}

	eventID := e.Request.URL.Query().Get("event_id")
	if eventID == "" {
		return apis.NewBadRequestError("Event ID required", nil)
	}

	current, err := h.participationService.GetParticipation(e.Request.Context(), e.Auth.Id, eventID)
	if err != nil {
		return apiError(err)
	}

	return e.JSON(http.StatusOK, map[string]any{
		"event_id": eventID,
		"status":   current,
	})
}
