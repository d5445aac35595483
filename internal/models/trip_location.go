package models

// LocationCategory groups pinned locations. Name is unique per trip; deleting
// a category removes its locations.
type LocationCategory struct {
	ID     int    `json:"id" db:"id"`
	TripID int    `json:"trip_id" db:"trip_id"`
	Name   string `json:"name" db:"name"`
}

// TripLocation is a map pin added by a guest. PlaceID is the external map
// provider's identifier, unique per trip. CategoryID is nil for uncategorized
// pins.
type TripLocation struct {
	ID         int     `json:"id" db:"id"`
	PlaceID    string  `json:"place_id" db:"place_id"`
	TripID     int     `json:"trip_id" db:"trip_id"`
	UserID     string  `json:"user_id" db:"user_id"`
	Name       string  `json:"name" db:"name"`
	Latitude   float64 `json:"latitude" db:"latitude"`
	Longitude  float64 `json:"longitude" db:"longitude"`
	CategoryID *int    `json:"category_id" db:"category_id"`
}
