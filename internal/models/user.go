package models

import "time"

// User represents a registered user. The id is the stable identifier issued
// by the external identity provider, not something we generate.
type User struct {
	ID          string    `json:"id" db:"id"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	FirstName   string    `json:"first_name" db:"first_name"`
	LastName    string    `json:"last_name" db:"last_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
