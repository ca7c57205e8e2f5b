package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"campus-pop/config"
	"campus-pop/internal/services"
	"campus-pop/internal/validation"
	"campus-pop/monitoring"
)

// setupAuthHooks enforces the signup policy: password strength rules and the
// student email-domain requirement. The domain is checked once, here; role is
// a stored attribute afterwards and cannot be changed by the account itself.
func setupAuthHooks(app *pocketbase.PocketBase, cfg *config.Config) {
	app.OnRecordCreateRequest("users").BindFunc(func(e *core.RecordRequestEvent) error {
		info, err := e.RequestInfo()
		if err != nil {
			return apis.NewBadRequestError("Invalid request", err)
		}

		email := e.Record.Email()
		password, _ := info.Body["password"].(string)
		name, _ := info.Body["name"].(string)

		if err := validation.ValidateSignup(email, password, name); err != nil {
			return apis.NewBadRequestError(err.Error(), err)
		}

		role := e.Record.GetString("role")
		if role == "student" && !strings.HasSuffix(strings.ToLower(email), cfg.StudentEmailDomain) {
			return apis.NewBadRequestError(
				fmt.Sprintf("Students must use a %s email address", cfg.StudentEmailDomain), nil)
		}

		return e.Next()
	})

	app.OnRecordUpdateRequest("users").BindFunc(func(e *core.RecordRequestEvent) error {
		if e.Record.GetString("role") != e.Record.Original().GetString("role") && !e.HasSuperuserAuth() {
			return apis.NewForbiddenError("Role cannot be changed", nil)
		}
		return e.Next()
	})
}

// setupParticipationHooks keeps the event counters authoritative: every
// participation write recounts the affected event inside the store and fans
// the fresh counts out to feed listeners.
func setupParticipationHooks(app *pocketbase.PocketBase, notifier *services.Notifier) {
	recount := func(e *core.RecordEvent) error {
		eventID := e.Record.GetString("event")

		if err := services.RecountEvent(e.App, eventID); err != nil {
			slog.Error("participation recount failed", "event_id", eventID, "error", err)
			return e.Next()
		}

		if event, err := e.App.FindRecordById("events", eventID); err == nil {
			notifier.CountsChanged(eventID, event.GetInt("interested_count"), event.GetInt("going_count"))
		}

		return e.Next()
	}

	app.OnRecordAfterCreateSuccess("participations").BindFunc(recount)
	app.OnRecordAfterUpdateSuccess("participations").BindFunc(recount)
	app.OnRecordAfterDeleteSuccess("participations").BindFunc(recount)
}

// setupEventHooks notifies feed listeners about event lifecycle changes.
// PocketBase realtime already streams the row changes; the PubNub message is
// the cue for clients that only hold the lightweight channel.
func setupEventHooks(app *pocketbase.PocketBase, notifier *services.Notifier, monitor *monitoring.Monitor) {
	app.OnRecordAfterCreateSuccess("events").BindFunc(func(e *core.RecordEvent) error {
		monitor.TrackEventOp("create")
		notifier.EventCreated(e.Record.Id)
		return e.Next()
	})

	app.OnRecordAfterUpdateSuccess("events").BindFunc(func(e *core.RecordEvent) error {
		monitor.TrackEventOp("update")
		return e.Next()
	})

	app.OnRecordAfterDeleteSuccess("events").BindFunc(func(e *core.RecordEvent) error {
		monitor.TrackEventOp("delete")
		notifier.EventDeleted(e.Record.Id)
		return e.Next()
	})
}
