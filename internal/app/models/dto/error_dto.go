package dto

// ErrorResponse is the standard error body: {"error": "<message>"}.
// The sync client relies on this shape to surface server messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
