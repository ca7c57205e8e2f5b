package models

const (
	StatusInterested = "interested"
	StatusGoing      = "going"
)

// Participation is the single row a user holds per event. The (event, user)
// pair is unique; clearing both flags deletes the row instead of storing an
// empty status.
type Participation struct {
	ID      string `db:"id" json:"id"`
	EventID string `db:"event" json:"event"`
	UserID  string `db:"user" json:"user"`
	Status  string `db:"status" json:"status"` // interested, going
}

// ParticipationOutcome reports the stored state after a toggle. Counts come
// from the event row as written by the store, never from client-side math.
type ParticipationOutcome struct {
	EventID         string `json:"event_id"`
	Status          string `json:"status"` // "" when the row was cleared
	InterestedCount int    `json:"interested_count"`
	GoingCount      int    `json:"going_count"`
}
