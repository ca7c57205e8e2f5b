package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"

	"campus-pop/internal/status"
	"campus-pop/internal/validation"
	"campus-pop/models"
)

// EventService owns the authoring path: validate the draft, enforce the
// scheduling window, insert the record with zeroed counts. Update and delete
// are restricted to the creator.
type EventService struct {
	app    core.App
	window time.Duration
}

func NewEventService(app core.App, window time.Duration) *EventService {
	return &EventService{app: app, window: window}
}

// draft timestamps arrive either as the datetime-local form value or as a
// full RFC 3339 string.
var draftTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func ParseEventTime(value string) (time.Time, error) {
	var err error
	for _, layout := range draftTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// CheckScheduleWindow rejects timestamps before `now` and, when the window is
// non-zero, timestamps further out than now+window. A zero window means any
// future date is acceptable.
func CheckScheduleWindow(eventAt, now time.Time, window time.Duration) error {
	if eventAt.Before(now) {
		return status.ErrScheduleWindow
	}
	if window > 0 && eventAt.After(now.Add(window)) {
		return status.ErrScheduleWindow
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, organizerID string, draft models.EventDraft) (*models.Event, error) {
	validation.NormalizeDraft(&draft)
	if err := validation.ValidateEventDraft(draft); err != nil {
		return nil, err
	}

	eventAt, err := ParseEventTime(draft.EventDateTime)
	if err != nil {
		return nil, status.NewValidationError("event_date_time", "Invalid date and time")
	}
	if err := CheckScheduleWindow(eventAt, time.Now(), s.window); err != nil {
		return nil, err
	}

	collection, err := s.app.FindCollectionByNameOrId("events")
	if err != nil {
		return nil, status.FailedOp("find events collection", err)
	}

	record := core.NewRecord(collection)
	record.Set("title", draft.Title)
	record.Set("club", draft.Club)
	record.Set("description", draft.Description)
	record.Set("category", draft.Category)
	record.Set("tags", draft.Tags)
	record.Set("venue", draft.Venue)
	record.Set("event_date_time", eventAt.UTC())
	record.Set("created_by", organizerID)
	record.Set("interested_count", 0)
	record.Set("going_count", 0)

	if err := s.app.Save(record); err != nil {
		return nil, status.FailedOp("create event", err)
	}

	slog.Info("event created", "event_id", record.Id, "organizer_id", organizerID)

	event := EventFromRecord(record)
	return &event, nil
}

func (s *EventService) Update(ctx context.Context, userID, eventID string, draft models.EventDraft) (*models.Event, error) {
	record, err := s.app.FindRecordById("events", eventID)
	if err != nil {
		return nil, status.ErrEventNotFound
	}
	if record.GetString("created_by") != userID {
		return nil, status.ErrForbidden
	}

	validation.NormalizeDraft(&draft)
	if err := validation.ValidateEventDraft(draft); err != nil {
		return nil, err
	}

	eventAt, err := ParseEventTime(draft.EventDateTime)
	if err != nil {
		return nil, status.NewValidationError("event_date_time", "Invalid date and time")
	}
	if err := CheckScheduleWindow(eventAt, time.Now(), s.window); err != nil {
		return nil, err
	}

	record.Set("title", draft.Title)
	record.Set("club", draft.Club)
	record.Set("description", draft.Description)
	record.Set("category", draft.Category)
	record.Set("tags", draft.Tags)
	record.Set("venue", draft.Venue)
	record.Set("event_date_time", eventAt.UTC())

	if err := s.app.Save(record); err != nil {
		return nil, status.FailedOp("update event", err)
	}

	event := EventFromRecord(record)
	return &event, nil
}

func (s *EventService) Delete(ctx context.Context, userID, eventID string) error {
	record, err := s.app.FindRecordById("events", eventID)
	if err != nil {
		return status.ErrEventNotFound
	}
	if record.GetString("created_by") != userID {
		return status.ErrForbidden
	}

	if err := s.app.Delete(record); err != nil {
		return status.FailedOp("delete event", err)
	}

	slog.Info("event deleted", "event_id", eventID, "organizer_id", userID)
	return nil
}

// ByCreator lists an organizer's own events in feed order for the dashboard.
func (s *EventService) ByCreator(ctx context.Context, userID string) ([]models.Event, error) {
	records, err := s.app.FindRecordsByFilter(
		"events",
		"created_by = {:user}",
		"event_date_time,id",
		0,
		0,
		dbx.Params{"user": userID},
	)
	if err != nil {
		return nil, status.FailedOp("fetch organizer events", err)
	}

	events := make([]models.Event, 0, len(records))
	for _, record := range records {
		events = append(events, EventFromRecord(record))
	}
	return events, nil
}
