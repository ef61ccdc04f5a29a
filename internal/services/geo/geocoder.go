package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultGeocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode"
	defaultPlacesBaseURL  = "https://maps.googleapis.com/maps/api/place"
)

// ErrNoResults indicates the upstream service returned an empty result set
// for an otherwise successful request.
var ErrNoResults = errors.New("geo: no results")

// Geocoding resolves a free-text location to coordinates.
type Geocoding interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// Geocoder is an HTTP client for the Google geocoding endpoint.
type Geocoder struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// GeocoderOption configures the Geocoder.
type GeocoderOption func(*Geocoder)

// WithGeocoderBaseURL overrides the API base URL (useful for testing).
func WithGeocoderBaseURL(u string) GeocoderOption {
	return func(g *Geocoder) { g.baseURL = strings.TrimRight(u, "/") }
}

// WithGeocoderHTTPClient sets a custom http.Client.
func WithGeocoderHTTPClient(h *http.Client) GeocoderOption {
	return func(g *Geocoder) { g.http = h }
}

// NewGeocoder constructs a Geocoder with sane defaults.
func NewGeocoder(apiKey string, opts ...GeocoderOption) (*Geocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("geo: geocoding API key is required")
	}
	g := &Geocoder{
		apiKey:  apiKey,
		baseURL: defaultGeocodeBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// Geocode resolves address to the coordinates of the first geocoding result.
// Returns ErrNoResults when the service finds nothing for the address.
func (g *Geocoder) Geocode(ctx context.Context, address string) (Coordinates, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	reqURL := g.baseURL + "/json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geo: building geocode request: %w", err)
	}

	res, err := g.http.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geo: geocode request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		return Coordinates{}, fmt.Errorf("geo: geocode http %d: %s", res.StatusCode, string(body))
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return Coordinates{}, fmt.Errorf("geo: decoding geocode response: %w", err)
	}

	if len(decoded.Results) == 0 {
		log.Warn().Str("address", address).Str("status", decoded.Status).Msg("Geocoding returned no results")
		return Coordinates{}, ErrNoResults
	}

	coords := decoded.Results[0].Geometry.Location
	log.Debug().
		Str("address", address).
		Float64("lat", coords.Lat).
		Float64("lng", coords.Lng).
		Msg("Geocoded location")
	return coords, nil
}
