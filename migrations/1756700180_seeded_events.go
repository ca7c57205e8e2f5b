package migrations

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/security"
)

// Demo content for a fresh instance: one organizer account and eight campus
// events. Dates are spread over the coming week so the seeded feed is never
// empty.
func init() {
	type seedEvent struct {
		id          string
		title       string
		club        string
		description string
		category    string
		tags        []string
		venue       string
		daysAhead   int
	}

	seeds := []seedEvent{
		{"seedevent000001", "EXTEMPORE", "Toastmasters", "Spontaneous speaking competition to test your quick thinking and communication skills", "Competition", []string{"Public Speaking", "Competition"}, "MBA Conference Room", 1},
		{"seedevent000002", "LinkedIn Success", "E-CELL", "Introduction to LinkedIn and personal branding for career growth", "Workshop", []string{"Career", "Networking", "LinkedIn"}, "ECL 06", 1},
		{"seedevent000003", "Raw and Rare Workshop", "Incubation Cell", "Startup journey from idea to execution - learn from successful entrepreneurs", "Workshop", []string{"Startup", "Entrepreneurship", "Business"}, "Gyaan Mandir Auditorium", 1},
		{"seedevent000004", "AUDITIONS - Diwali Festival", "Dance Club", "Auditions for the upcoming Diwali festival dance performances", "Audition", []string{"Dance", "Festival", "Diwali"}, "Civil Front", 2},
		{"seedevent000005", "Core Team Auditions", "Music Club", "Join the music club core team - showcase your musical talent", "Audition", []string{"Music", "Audition", "Core Team"}, "J.C. Bose", 2},
		{"seedevent000006", "Clean Drive", "NSS", "Plastic-free campus initiative - help make our campus greener", "Social", []string{"Environment", "Social Service", "Campus"}, "Football Ground", 3},
		{"seedevent000007", "Hands on Workshop", "XPOSURE", "Photography workshop covering composition, lighting, and editing techniques", "Workshop", []string{"Photography", "Workshop", "Creative"}, "CS Block 103", 3},
		{"seedevent000008", "Workshop on Canva", "Design Club", "Learn graphic design basics and create stunning visuals using Canva", "Workshop", []string{"Design", "Canva", "Graphics"}, "CS Block 304", 4},
	}

	m.Register(func(app core.App) error {
		users, err := app.FindCollectionByNameOrId("_pb_users_auth_")
		if err != nil {
			return err
		}

		organizer := core.NewRecord(users)
		organizer.Set("id", "seedorganizer01")
		organizer.SetEmail("organizer@college.edu")
		organizer.SetPassword(security.RandomString(30))
		organizer.SetVerified(true)
		organizer.Set("role", "organizer")
		if err := app.Save(organizer); err != nil {
			return err
		}

		events, err := app.FindCollectionByNameOrId("events")
		if err != nil {
			return err
		}

		base := time.Now()
		for _, s := range seeds {
			record := core.NewRecord(events)
			record.Set("id", s.id)
			record.Set("title", s.title)
			record.Set("club", s.club)
			record.Set("description", s.description)
			record.Set("category", s.category)
			record.Set("tags", s.tags)
			record.Set("venue", s.venue)
			record.Set("event_date_time", base.AddDate(0, 0, s.daysAhead))
			record.Set("created_by", organizer.Id)
			record.Set("interested_count", 0)
			record.Set("going_count", 0)
			if err := app.Save(record); err != nil {
				return fmt.Errorf("seed event %q: %w", s.title, err)
			}
		}

		return nil
	}, func(app core.App) error {
		for _, s := range seeds {
			record, err := app.FindRecordById("events", s.id)
			if err != nil {
				continue
			}
			if err := app.Delete(record); err != nil {
				return err
			}
		}

		if organizer, err := app.FindRecordById("_pb_users_auth_", "seedorganizer01"); err == nil {
			return app.Delete(organizer)
		}

		return nil
	})
}
