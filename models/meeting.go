package models

import "time"

// Meeting describes the calendar event to create for a booking. It is
// never persisted; only the returned join link outlives the request.
type Meeting struct {
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
	// Timezone is the zone name declared on the event; the instants
	// above are absolute and do not change with it.
	Timezone  string
	Attendees []string
}
