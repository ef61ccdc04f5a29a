package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) (*Geocoder, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	g, err := NewGeocoder("test-key", WithGeocoderBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewGeocoder error: %v", err)
	}
	return g, srv
}

func TestGeocode_Success(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("address"); got != "San Francisco" {
			t.Fatalf("address = %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Fatalf("key = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 37.7749, "lng": -122.4194}}},
				{"geometry": {"location": {"lat": 0, "lng": 0}}}
			]
		}`))
	}
	g, srv := newTestGeocoder(t, handler)
	defer srv.Close()

	coords, err := g.Geocode(context.Background(), "San Francisco")
	if err != nil {
		t.Fatalf("Geocode error: %v", err)
	}
	if coords.Lat != 37.7749 || coords.Lng != -122.4194 {
		t.Fatalf("coords = %+v", coords)
	}
}

func TestGeocode_Idempotent(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":45.52,"lng":-122.68}}}]}`))
	}
	g, srv := newTestGeocoder(t, handler)
	defer srv.Close()

	first, err := g.Geocode(context.Background(), "Portland")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := g.Geocode(context.Background(), "Portland")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Fatalf("coords differ across calls: %+v vs %+v", first, second)
	}
}

func TestGeocode_NoResults(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}
	g, srv := newTestGeocoder(t, handler)
	defer srv.Close()

	_, err := g.Geocode(context.Background(), "nowhere at all")
	if err != ErrNoResults {
		t.Fatalf("err = %v, want ErrNoResults", err)
	}
}

func TestGeocode_HTTPError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}
	g, srv := newTestGeocoder(t, handler)
	defer srv.Close()

	_, err := g.Geocode(context.Background(), "Chicago")
	if err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}

func TestNewGeocoder_RequiresAPIKey(t *testing.T) {
	if _, err := NewGeocoder(""); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
