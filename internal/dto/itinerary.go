package dto

// AddItineraryItemRequest creates one itinerary entry
type AddItineraryItemRequest struct {
	TripID      int    `json:"trip_id"`
	ItemID      string `json:"item_id"`
	Date        string `json:"date"` // RFC1123, e.g. "Fri, 08 Nov 2024 00:00:00 GMT"
	Description string `json:"description"`
}

// UpdateItineraryItemRequest rewrites one itinerary entry
type UpdateItineraryItemRequest struct {
	TripID      int    `json:"trip_id"`
	ItemID      string `json:"item_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// DeleteItineraryItemRequest removes one itinerary entry
type DeleteItineraryItemRequest struct {
	TripID int    `json:"trip_id"`
	ItemID string `json:"item_id"`
}

// ItineraryItem is one listed entry
type ItineraryItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// GetItineraryResponse envelope
type GetItineraryResponse struct {
	Itinerary []ItineraryItem `json:"itinerary"`
}
