package models

import "time"

// TripTodo is a shared checklist item. Only guests with a confirmed RSVP may
// mutate todos; deletion is restricted to the host.
type TripTodo struct {
	ID            string    `json:"id" db:"id"`
	TripID        int       `json:"trip_id" db:"trip_id"`
	Text          string    `json:"text" db:"text"`
	Checked       bool      `json:"checked" db:"checked"`
	LastUpdatedBy string    `json:"last_updated_by" db:"last_updated_by"`
	LastUpdatedAt time.Time `json:"last_updated_at" db:"last_updated_at"`
}
