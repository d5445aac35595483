package models

// RsvpStatus is a guest's response state to a trip invitation.
type RsvpStatus string

const (
	RsvpInvited RsvpStatus = "INVITED"
	RsvpYes     RsvpStatus = "YES"
	RsvpNo      RsvpStatus = "NO"
	RsvpMaybe   RsvpStatus = "MAYBE"
)

// Valid reports whether s is one of the known RSVP states.
func (s RsvpStatus) Valid() bool {
	switch s {
	case RsvpInvited, RsvpYes, RsvpNo, RsvpMaybe:
		return true
	}
	return false
}

// TripGuest is a user's membership row for a trip. Exactly one guest per trip
// has IsHost set.
type TripGuest struct {
	ID         int        `json:"id" db:"id"`
	TripID     int        `json:"trip_id" db:"trip_id"`
	GuestID    string     `json:"guest_id" db:"guest_id"`
	IsHost     bool       `json:"is_host" db:"is_host"`
	RsvpStatus RsvpStatus `json:"rsvp_status" db:"rsvp_status"`
}
