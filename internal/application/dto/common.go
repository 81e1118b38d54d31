package dto

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse HTTP success body for operations with nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}
