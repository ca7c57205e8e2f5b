package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"

	"campus-pop/internal/status"
	"campus-pop/models"
)

// ParticipationService reconciles toggle requests against the stored
// participation row. The store keeps at most one row per (event, user); the
// displayed counts live on the event row and are maintained by the record
// hooks, so after every write the service re-reads them instead of computing
// anything locally.
type ParticipationService struct {
	app core.App
}

func NewParticipationService(app core.App) *ParticipationService {
	return &ParticipationService{app: app}
}

// NextStatus applies the toggle rules: re-requesting the current status
// clears it, requesting the other one overwrites it. The two statuses are
// mutually exclusive, not independent booleans.
func NextStatus(current, requested string) string {
	if current == requested {
		return ""
	}
	return requested
}

func (s *ParticipationService) SetParticipation(ctx context.Context, userID, eventID, requested string) (*models.ParticipationOutcome, error) {
	if requested != models.StatusInterested && requested != models.StatusGoing {
		return nil, status.ErrUnknownStatus
	}

	event, err := s.app.FindRecordById("events", eventID)
	if err != nil {
		return nil, status.ErrEventNotFound
	}
	if event.GetString("created_by") == userID {
		return nil, status.ErrSelfParticipate
	}

	existing, err := s.app.FindFirstRecordByFilter(
		"participations",
		"event = {:event} && user = {:user}",
		dbx.Params{"event": eventID, "user": userID},
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, status.FailedOp("read participation", err)
	}

	current := ""
	if existing != nil {
		current = existing.GetString("status")
	}
	next := NextStatus(current, requested)

	// The write happens first and the outcome is derived only from what the
	// store confirms. Nothing flips before then.
	switch {
	case next == "" && existing != nil:
		if err := s.app.Delete(existing); err != nil {
			return nil, status.FailedOp("clear participation", err)
		}
	case next == "" && existing == nil:
		// Nothing stored and nothing requested: no-op.
	case existing != nil:
		existing.Set("status", next)
		if err := s.app.Save(existing); err != nil {
			return nil, status.FailedOp("update participation", err)
		}
	default:
		collection, err := s.app.FindCollectionByNameOrId("participations")
		if err != nil {
			return nil, status.FailedOp("find participations collection", err)
		}
		record := core.NewRecord(collection)
		record.Set("event", eventID)
		record.Set("user", userID)
		record.Set("status", next)
		if err := s.app.Save(record); err != nil {
			return nil, status.FailedOp("create participation", err)
		}
	}

	// Counts are owned by the store; re-read the event row the hooks updated.
	event, err = s.app.FindRecordById("events", eventID)
	if err != nil {
		return nil, status.FailedOp("reload event counts", err)
	}

	slog.Info("participation reconciled",
		"event_id", eventID,
		"user_id", userID,
		"status", next,
	)

	return &models.ParticipationOutcome{
		EventID:         eventID,
		Status:          next,
		InterestedCount: event.GetInt("interested_count"),
		GoingCount:      event.GetInt("going_count"),
	}, nil
}

// GetParticipation returns the stored status for (event, user), or the empty
// string when no row exists.
func (s *ParticipationService) GetParticipation(ctx context.Context, userID, eventID string) (string, error) {
	record, err := s.app.FindFirstRecordByFilter(
		"participations",
		"event = {:event} && user = {:user}",
		dbx.Params{"event": eventID, "user": userID},
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", status.FailedOp("read participation", err)
	}
	return record.GetString("status"), nil
}

// RecountEvent recomputes the two counters for an event straight from the
// participation rows and writes them onto the event row. It runs from the
// participation record hooks, which makes the counts a store-side concern:
// clients only ever read them back.
func RecountEvent(app core.App, eventID string) error {
	var row struct {
		Interested int `db:"interested"`
		Going      int `db:"going"`
	}

	err := app.DB().NewQuery(`
		SELECT
			COALESCE(SUM(CASE WHEN status = 'interested' THEN 1 ELSE 0 END), 0) AS interested,
			COALESCE(SUM(CASE WHEN status = 'going' THEN 1 ELSE 0 END), 0) AS going
		FROM participations
		WHERE event = {:event}
	`).Bind(dbx.Params{"event": eventID}).One(&row)
	if err != nil {
		return err
	}

	// Direct column update so the recount never re-triggers record hooks.
	_, err = app.DB().Update(
		"events",
		dbx.Params{"interested_count": row.Interested, "going_count": row.Going},
		dbx.HashExp{"id": eventID},
	).Execute()
	return err
}
