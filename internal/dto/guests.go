package dto

// GuestItem is one guest row with profile fields joined in
type GuestItem struct {
	GuestID        string `json:"guest_id"`
	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
	IsHost         bool   `json:"is_host"`
	RsvpStatus     string `json:"rsvp_status"`
}

// GetTripGuestsResponse envelope
type GetTripGuestsResponse struct {
	Guests []GuestItem `json:"guests"`
}

// GuestInfo is the caller's own membership row
type GuestInfo struct {
	TripID      int    `json:"trip_id"`
	GuestUserID string `json:"guest_user_id"`
	IsHost      bool   `json:"is_host"`
	RsvpStatus  string `json:"rsvp_status"`
}

// GetGuestInfoResponse envelope
type GetGuestInfoResponse struct {
	Guest GuestInfo `json:"guest"`
}

// AcceptInviteRequest joins the caller to the trip behind an invite token
type AcceptInviteRequest struct {
	TripToken string `json:"trip_token"`
}

// AcceptInviteResponse returns the joined trip's id
type AcceptInviteResponse struct {
	Message string `json:"message"`
	TripID  int    `json:"trip_id"`
}

// UpdateRsvpRequest sets the caller's RSVP status
type UpdateRsvpRequest struct {
	TripID     int    `json:"trip_id"`
	RsvpStatus string `json:"rsvp_status"` // YES | NO | MAYBE
}

// DeleteTripGuestRequest removes a guest from a trip. GuestID defaults to the
// caller when empty.
type DeleteTripGuestRequest struct {
	TripID  int    `json:"trip_id"`
	GuestID string `json:"guest_id"`
}
