package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/types"

	"campus-pop/internal/status"
	"campus-pop/models"
)

// CategoryAll is the sentinel selector that matches every category.
const CategoryAll = "all"

// FeedService loads the upcoming slice of the events table. Time filtering
// happens at the query layer: events before `now` never leave the store, and
// a non-zero window bounds the lookahead (one week by default, a "this week's
// events" feed).
type FeedService struct {
	app    core.App
	window time.Duration
}

func NewFeedService(app core.App, window time.Duration) *FeedService {
	return &FeedService{app: app, window: window}
}

func (s *FeedService) Upcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	from, err := types.ParseDateTime(now.UTC())
	if err != nil {
		return nil, status.FailedOp("fetch upcoming events", err)
	}

	filter := "event_date_time >= {:from}"
	params := dbx.Params{"from": from}
	if s.window > 0 {
		until, err := types.ParseDateTime(now.Add(s.window).UTC())
		if err != nil {
			return nil, status.FailedOp("fetch upcoming events", err)
		}
		filter += " && event_date_time <= {:until}"
		params["until"] = until
	}

	records, err := s.app.FindRecordsByFilter("events", filter, "event_date_time,id", 0, 0, params)
	if err != nil {
		return nil, status.FailedOp("fetch upcoming events", err)
	}

	events := make([]models.Event, 0, len(records))
	for _, record := range records {
		events = append(events, EventFromRecord(record))
	}
	return events, nil
}

// EventFromRecord maps a stored event row onto the wire model.
func EventFromRecord(record *core.Record) models.Event {
	return models.Event{
		ID:              record.Id,
		Title:           record.GetString("title"),
		Club:            record.GetString("club"),
		Description:     record.GetString("description"),
		Category:        record.GetString("category"),
		Tags:            record.GetStringSlice("tags"),
		Venue:           record.GetString("venue"),
		EventDateTime:   record.GetDateTime("event_date_time").Time(),
		CreatedBy:       record.GetString("created_by"),
		InterestedCount: record.GetInt("interested_count"),
		GoingCount:      record.GetInt("going_count"),
		Created:         record.GetDateTime("created").Time(),
	}
}

// FilterEvents narrows an event set to the visible feed: a case-insensitive
// substring match on title or description, an exact category match (or the
// "all" sentinel), both required at once. Events already in the past are
// dropped as a guard, since a re-fetch can race a notification that arrived
// while an older snapshot was in flight. The result is ordered by event time
// ascending with the store id as tiebreak. The input is never mutated.
func FilterEvents(events []models.Event, now time.Time, query, category string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))

	visible := make([]models.Event, 0, len(events))
	for _, event := range events {
		if event.EventDateTime.Before(now) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(event.Title), q) &&
			!strings.Contains(strings.ToLower(event.Description), q) {
			continue
		}
		if category != "" && category != CategoryAll && event.Category != category {
			continue
		}
		visible = append(visible, event)
	}

	sort.Slice(visible, func(i, j int) bool {
		if !visible[i].EventDateTime.Equal(visible[j].EventDateTime) {
			return visible[i].EventDateTime.Before(visible[j].EventDateTime)
		}
		return visible[i].ID < visible[j].ID
	})

	return visible
}
