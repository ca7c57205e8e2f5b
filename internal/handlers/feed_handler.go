package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-pop/internal/services"
	"campus-pop/monitoring"
)

type FeedHandler struct {
	feedService *services.FeedService
	monitor     *monitoring.Monitor
}

func NewFeedHandler(feedService *services.FeedService, monitor *monitoring.Monitor) *FeedHandler {
	return &FeedHandler{feedService: feedService, monitor: monitor}
}

// Feed returns the filtered, time-ordered event list for the student feed.
// `search` matches title or description, `category` is exact or "all".
func (h *FeedHandler) Feed(e *core.RequestEvent) error {
	if e.Auth == nil {
		return apis.NewUnauthorizedError("Authentication required", nil)
	}

	started := time.Now()
	query := e.Request.URL.Query()
	search := query.Get("search")
	category := query.Get("category")
	if category == "" {
		category = services.CategoryAll
	}

	now := time.Now()
	events, err := h.feedService.Upcoming(e.Request.Context(), now)
	if err != nil {
		return apiError(err)
	}

	visible := services.FilterEvents(events, now, search, category)
	h.monitor.TrackFeedRequest(time.Since(started))

	return e.JSON(http.StatusOK, map[string]any{
		"events": visible,
		"total":  len(visible),
	})
}
