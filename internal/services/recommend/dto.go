package recommend

import "place-recommender/internal/services/geo"

// Status classifies the pipeline outcome. Every value other than StatusOK is
// a recoverable early exit with a user-facing message; transport failures are
// returned as errors instead.
type Status string

const (
	StatusOK           Status = "ok"
	StatusNeedLocation Status = "need_location"
	StatusNoGeocode    Status = "no_geocode"
	StatusNoResults    Status = "no_results"
)

// Request is a single recommendation query.
type Request struct {
	Query string `json:"query"`
}

// Response is the pipeline result for one request.
type Response struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Answer  string `json:"answer,omitempty"`

	// Warning carries a non-fatal note, currently only the intent parse
	// fallback notice.
	Warning string `json:"warning,omitempty"`

	Location    string           `json:"location,omitempty"`
	PlaceType   string           `json:"place_type,omitempty"`
	Coordinates *geo.Coordinates `json:"coordinates,omitempty"`
	Places      []geo.Place      `json:"places,omitempty"`

	Meta Meta `json:"meta"`
}

// Meta describes how the answer was produced.
type Meta struct {
	Query        string `json:"query"`
	RadiusMeters int    `json:"radius_meters"`
	ResultCount  int    `json:"result_count"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo represents error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeRateLimit  = "RATE_LIMIT"
)

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}
