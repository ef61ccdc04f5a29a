package geo

import "fmt"

// Coordinates is a latitude/longitude pair as returned by the geocoder.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the comma-joined "lat,lng" form the Places API expects.
func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// Place is the reduced view of a candidate venue. Only these three fields
// survive the projection; everything else from the search response is dropped.
type Place struct {
	Name     string  `json:"name"`
	Vicinity string  `json:"vicinity"`
	Rating   float64 `json:"rating"`
}

// geocodeResponse mirrors the subset of the geocoding payload we read:
// results[0].geometry.location.{lat,lng}.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location Coordinates `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// nearbyResponse mirrors the nearby-search payload. Extra fields per result
// are tolerated and ignored.
type nearbyResponse struct {
	Results []nearbyResult `json:"results"`
	Status  string         `json:"status"`
}

type nearbyResult struct {
	Name     string  `json:"name"`
	Vicinity string  `json:"vicinity"`
	Rating   float64 `json:"rating"`
}

// reducePlaces projects raw search results to the three retained fields,
// preserving insertion order. No filtering, dedup, or ranking.
func reducePlaces(results []nearbyResult) []Place {
	places := make([]Place, len(results))
	for i, r := range results {
		places[i] = Place{
			Name:     r.Name,
			Vicinity: r.Vicinity,
			Rating:   r.Rating,
		}
	}
	return places
}
