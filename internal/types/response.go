package types

// GuidanceResponse is the body of every /ai-guidance response,
// on success as well as when the model could not be reached
type GuidanceResponse struct {
	Answer         string `json:"answer"`
	ConfidenceNote string `json:"confidence_note"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
