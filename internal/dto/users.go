package dto

// CreateUserRequest registers the verified identity. Id and phone number come
// from the bearer token, never from the body.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserResponse is a user's stored profile
type UserResponse struct {
	PhoneNumber string `json:"phoneNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

// ValidateUserResponse envelope
type ValidateUserResponse struct {
	Message     string `json:"message"`
	PhoneNumber string `json:"phoneNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}
