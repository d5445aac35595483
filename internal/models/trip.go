package models

import "time"

// Trip represents a planned trip. The token is an opaque invite token used by
// non-guests to join without knowing the numeric id.
type Trip struct {
	ID          int       `json:"id" db:"id"`
	Token       string    `json:"token" db:"token"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	HostID      string    `json:"host_id" db:"host_id"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
