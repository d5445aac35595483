package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// MessageResponse is the body of simple success acknowledgements
type MessageResponse struct {
	Message string `json:"message"`
}
