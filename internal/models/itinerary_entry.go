package models

import "time"

// ItineraryEntry is one day's plan for a trip. Ids are opaque strings supplied
// by the client (seeded rows get generated UUIDs).
type ItineraryEntry struct {
	ID          string    `json:"id" db:"id"`
	TripID      int       `json:"trip_id" db:"trip_id"`
	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
}
