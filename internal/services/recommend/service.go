package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"place-recommender/internal/services/geo"
	"place-recommender/internal/services/llm"
)

// User-facing guard messages.
const (
	msgParseFallback = "Could not interpret the query; assuming a generic place search."
	msgNeedLocation  = "Please specify a location in your query."
	msgNoGeocode     = "Could not retrieve coordinates for the specified location."
	msgNoResults     = "No results found for the specified location and query."
)

// Service drives the four pipeline stages in order: interpret, geocode,
// search, summarize. Each guard short-circuits with a user-visible status;
// transport failures from any stage come back as errors.
type Service struct {
	llm          llm.Client
	geocoder     geo.Geocoding
	places       geo.Searching
	radiusMeters int
}

func NewService(llmClient llm.Client, geocoder geo.Geocoding, places geo.Searching, radiusMeters int) *Service {
	return &Service{
		llm:          llmClient,
		geocoder:     geocoder,
		places:       places,
		radiusMeters: radiusMeters,
	}
}

// Recommend runs one query through the pipeline.
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("recommend: query is required")
	}

	resp := &Response{
		Meta: Meta{
			Query:        query,
			RadiusMeters: s.radiusMeters,
		},
	}

	intent, err := s.llm.ExtractIntent(ctx, query)
	switch {
	case errors.Is(err, llm.ErrBadReply):
		// Recoverable: fall back to a blank location and the generic
		// category. The location guard below then stops the pipeline.
		intent = &llm.Intent{PlaceType: llm.DefaultPlaceType}
		resp.Warning = msgParseFallback
	case err != nil:
		return nil, fmt.Errorf("recommend: interpreting query: %w", err)
	}

	resp.Location = intent.Location
	resp.PlaceType = intent.PlaceType

	if intent.Location == "" || strings.EqualFold(intent.Location, llm.UnspecifiedLocation) {
		resp.Status = StatusNeedLocation
		resp.Message = msgNeedLocation
		return resp, nil
	}

	coords, err := s.geocoder.Geocode(ctx, intent.Location)
	if errors.Is(err, geo.ErrNoResults) {
		resp.Status = StatusNoGeocode
		resp.Message = msgNoGeocode
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("recommend: geocoding %q: %w", intent.Location, err)
	}
	resp.Coordinates = &coords

	places, err := s.places.NearbySearch(ctx, coords, s.radiusMeters, intent.PlaceType)
	if err != nil {
		return nil, fmt.Errorf("recommend: searching places: %w", err)
	}
	resp.Places = places
	resp.Meta.ResultCount = len(places)

	if len(places) == 0 {
		resp.Status = StatusNoResults
		resp.Message = msgNoResults
		return resp, nil
	}

	answer, err := s.llm.Summarize(ctx, query, places)
	if err != nil {
		return nil, fmt.Errorf("recommend: summarizing results: %w", err)
	}

	log.Info().
		Str("query", query).
		Str("location", intent.Location).
		Str("place_type", intent.PlaceType).
		Int("results", len(places)).
		Msg("Recommendation produced")

	resp.Status = StatusOK
	resp.Answer = answer
	return resp, nil
}
