package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is returned when request validation fails. It
// enumerates every violated field with a human-readable reason.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// ValidationFailed is the fixed error literal of validation responses
const ValidationFailed = "Validation failed"

// NewValidationErrorResponse builds the standard validation failure payload
func NewValidationErrorResponse(details map[string]string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Error:   ValidationFailed,
		Details: details,
	}
}

// HealthResponse reports the result of the database round-trip probe
type HealthResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
