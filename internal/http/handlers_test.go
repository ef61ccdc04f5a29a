package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"place-recommender/internal/services/recommend"
)

type stubRecommender struct {
	resp *recommend.Response
	err  error

	lastReq recommend.Request
}

func (s *stubRecommender) Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

func newTestServer(t *testing.T, stub *stubRecommender) *httptest.Server {
	t.Helper()
	router := NewRouter()
	handler := NewRecommendHandler(stub)
	router.RegisterRecommendRoutes(handler)
	router.RegisterUIRoutes()
	router.RegisterHealthRoutes()
	return httptest.NewServer(router)
}

func TestRecommend_POST(t *testing.T) {
	stub := &stubRecommender{resp: &recommend.Response{
		Status: recommend.StatusOK,
		Answer: "- **City Park**: a classic.",
	}}
	srv := newTestServer(t, stub)
	defer srv.Close()

	res, err := http.Post(srv.URL+"/api/v1/recommend", "application/json",
		strings.NewReader(`{"query": "Parks in Chicago"}`))
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var got recommend.Response
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != recommend.StatusOK || got.Answer == "" {
		t.Fatalf("response = %+v", got)
	}
	if stub.lastReq.Query != "Parks in Chicago" {
		t.Fatalf("service saw query %q", stub.lastReq.Query)
	}
}

func TestRecommend_GETQueryParam(t *testing.T) {
	stub := &stubRecommender{resp: &recommend.Response{Status: recommend.StatusNeedLocation, Message: "Please specify a location in your query."}}
	srv := newTestServer(t, stub)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/v1/recommend?query=things+to+do")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var got recommend.Response
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != recommend.StatusNeedLocation || got.Message == "" {
		t.Fatalf("response = %+v", got)
	}
}

func TestRecommend_MissingQuery(t *testing.T) {
	srv := newTestServer(t, &stubRecommender{})
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/v1/recommend")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
	var got recommend.ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Error.Code != recommend.ErrCodeValidation {
		t.Fatalf("error code = %q", got.Error.Code)
	}
}

func TestRecommend_ServiceError(t *testing.T) {
	stub := &stubRecommender{err: context.DeadlineExceeded}
	srv := newTestServer(t, stub)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/v1/recommend?query=parks")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.StatusCode)
	}
}

func TestExamples_IncludesLastQuery(t *testing.T) {
	stub := &stubRecommender{resp: &recommend.Response{Status: recommend.StatusOK, Answer: "ok"}}
	srv := newTestServer(t, stub)
	defer srv.Close()

	if _, err := http.Post(srv.URL+"/api/v1/recommend", "application/json",
		strings.NewReader(`{"query": "Restaurants near Los Angeles"}`)); err != nil {
		t.Fatalf("POST error: %v", err)
	}

	res, err := http.Get(srv.URL + "/api/v1/examples")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer res.Body.Close()

	var got ExamplesResponse
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Examples) != 5 {
		t.Fatalf("len(examples) = %d, want 5", len(got.Examples))
	}
	if got.LastQuery != "Restaurants near Los Angeles" {
		t.Fatalf("last_query = %q", got.LastQuery)
	}
}

func TestServeIndex(t *testing.T) {
	srv := newTestServer(t, &stubRecommender{})
	defer srv.Close()

	res, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubRecommender{})
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
}
