package models

import (
	"time"
)

type Event struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Club            string    `db:"club" json:"club"`
	Description     string    `db:"description" json:"description"`
	Category        string    `db:"category" json:"category"`
	Tags            []string  `db:"-" json:"tags"`
	Venue           string    `db:"venue" json:"venue"`
	EventDateTime   time.Time `db:"event_date_time" json:"event_date_time"`
	CreatedBy       string    `db:"created_by" json:"created_by"`
	InterestedCount int       `db:"interested_count" json:"interested_count"`
	GoingCount      int       `db:"going_count" json:"going_count"`
	Created         time.Time `db:"created" json:"created"`
}

// EventDraft carries raw organizer input before validation.
type EventDraft struct {
	Title         string   `json:"title"`
	Club          string   `json:"club"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Venue         string   `json:"venue"`
	EventDateTime string   `json:"event_date_time"`
}
