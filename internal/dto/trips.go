package dto

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	TripName        string `json:"trip_name"`
	TripDescription string `json:"trip_description"`
	TripStartDate   string `json:"trip_start_date"` // MM/DD/YYYY
	TripEndDate     string `json:"trip_end_date"`   // MM/DD/YYYY
}

// CreateTripResponse returns the new trip's id and invite token
type CreateTripResponse struct {
	Message   string `json:"message"`
	TripID    int    `json:"trip_id"`
	TripToken string `json:"trip_token"`
}

// UpdateTripRequest represents fields allowed to update a trip
// All fields are optional; only provided ones will be updated
type UpdateTripRequest struct {
	TripID          int     `json:"trip_id"`
	TripName        *string `json:"trip_name"`
	TripDescription *string `json:"trip_description"`
	TripStartDate   *string `json:"trip_start_date"` // MM/DD/YYYY
	TripEndDate     *string `json:"trip_end_date"`   // MM/DD/YYYY
}

// TripDetails is a trip object in responses
type TripDetails struct {
	TripID          int    `json:"trip_id"`
	TripToken       string `json:"trip_token"`
	TripName        string `json:"trip_name"`
	TripDescription string `json:"trip_description"`
	TripHostname    string `json:"trip_hostname"`
	TripStartDate   string `json:"trip_start_date"`
	TripEndDate     string `json:"trip_end_date"`
}

// GetTripResponse envelope
type GetTripResponse struct {
	TripDetails TripDetails `json:"trip_details"`
}

// UserTripItem is a trip the caller belongs to, with their RSVP state
type UserTripItem struct {
	TripDetails
	RsvpStatus string `json:"rsvp_status"`
}

// GetUserTripsResponse envelope
type GetUserTripsResponse struct {
	Trips []UserTripItem `json:"trips"`
}

// SetNewHostRequest transfers host status to an existing guest
type SetNewHostRequest struct {
	TripID    int    `json:"trip_id"`
	NewHostID string `json:"new_host_id"`
}
