package llm

import (
	"context"
	"errors"

	"place-recommender/internal/services/geo"
)

// DefaultPlaceType is the generic category used when the model does not name
// a more specific one.
const DefaultPlaceType = "point_of_interest"

// UnspecifiedLocation is the sentinel the extraction prompt instructs the
// model to emit when the query names no location.
const UnspecifiedLocation = "unspecified"

// ErrBadReply indicates the model reply could not be decoded as the expected
// JSON object. Callers treat it as recoverable and fall back to an intent
// with an empty location and the default place type.
var ErrBadReply = errors.New("llm: model reply is not valid intent JSON")

// Intent is the structured extraction of location and place category from a
// free-text query.
type Intent struct {
	Location  string `json:"location"`
	Intent    string `json:"intent"`
	PlaceType string `json:"place_type"`
}

// Client is the LLM interface for the two model-backed pipeline stages.
type Client interface {
	// ExtractIntent parses a user query into location and place category.
	ExtractIntent(ctx context.Context, query string) (*Intent, error)

	// Summarize turns a reduced place list and the original query into a
	// short conversational answer.
	Summarize(ctx context.Context, query string, places []geo.Place) (string, error)
}
