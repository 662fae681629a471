package dto

// MessageResponse is a generic response for success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error. Status is only set by the
// readiness gate and reports the store's connection state.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Status  *int   `json:"status,omitempty"`
}
