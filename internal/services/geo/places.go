package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Searching finds candidate venues near a coordinate pair.
type Searching interface {
	NearbySearch(ctx context.Context, coords Coordinates, radiusMeters int, placeType string) ([]Place, error)
}

// PlacesClient is an HTTP client for the Google Places nearby-search endpoint.
type PlacesClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// PlacesOption configures the PlacesClient.
type PlacesOption func(*PlacesClient)

// WithPlacesBaseURL overrides the API base URL (useful for testing).
func WithPlacesBaseURL(u string) PlacesOption {
	return func(p *PlacesClient) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithPlacesHTTPClient sets a custom http.Client.
func WithPlacesHTTPClient(h *http.Client) PlacesOption {
	return func(p *PlacesClient) { p.http = h }
}

// NewPlacesClient constructs a PlacesClient with sane defaults.
func NewPlacesClient(apiKey string, opts ...PlacesOption) (*PlacesClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("geo: places API key is required")
	}
	p := &PlacesClient{
		apiKey:  apiKey,
		baseURL: defaultPlacesBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// NearbySearch queries venues of placeType within radiusMeters of coords and
// returns the reduced result list in the order the service returned it. An
// empty list is not an error here; the caller decides how to surface it.
func (p *PlacesClient) NearbySearch(ctx context.Context, coords Coordinates, radiusMeters int, placeType string) ([]Place, error) {
	params := url.Values{}
	params.Set("location", coords.String())
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", placeType)
	params.Set("key", p.apiKey)

	reqURL := p.baseURL + "/nearbysearch/json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geo: building nearby search request: %w", err)
	}

	res, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo: nearby search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		return nil, fmt.Errorf("geo: nearby search http %d: %s", res.StatusCode, string(body))
	}

	var decoded nearbyResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("geo: decoding nearby search response: %w", err)
	}

	places := reducePlaces(decoded.Results)
	log.Debug().
		Str("location", coords.String()).
		Int("radius_m", radiusMeters).
		Str("type", placeType).
		Int("count", len(places)).
		Msg("Nearby search completed")
	return places, nil
}
