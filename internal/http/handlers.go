package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"place-recommender/internal/services/recommend"
)

// ExampleQueries are offered as one-click shortcuts in the UI.
var ExampleQueries = []string{
	"Tell me things to do in Portland Downtown",
	"Coffee spots around San Francisco",
	"Top tourist attractions in New York",
	"Restaurants near Los Angeles",
	"Parks in Chicago",
}

// Recommender is the service dependency of the handler.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// RecommendHandler handles recommendation HTTP requests. It also holds the
// last-submitted query, the only cross-request state, used to pre-fill the
// input field.
type RecommendHandler struct {
	service Recommender

	mu        sync.Mutex
	lastQuery string
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(service Recommender) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// RegisterRoutes registers all recommendation routes
func (h *RecommendHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/recommend", h.Recommend)
		r.Get("/recommend", h.Recommend)
		r.Get("/examples", h.Examples)
	})
}

// Recommend runs one query through the pipeline.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request

	if r.Method == http.MethodGet {
		req.Query = r.URL.Query().Get("query")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, recommend.ErrCodeValidation, "invalid request body")
			return
		}
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, recommend.ErrCodeValidation, "query is required")
		return
	}

	h.setLastQuery(req.Query)

	response, err := h.service.Recommend(r.Context(), req)
	if err != nil {
		log.Error().Str("query", req.Query).Err(err).Msg("Recommendation failed")
		writeError(w, http.StatusInternalServerError, recommend.ErrCodeInternal, "Failed to process query")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// ExamplesResponse carries the clickable example queries and the last
// submitted query for input pre-fill.
type ExamplesResponse struct {
	Examples  []string `json:"examples"`
	LastQuery string   `json:"last_query"`
}

// Examples returns the example-query shortcuts.
func (h *RecommendHandler) Examples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ExamplesResponse{
		Examples:  ExampleQueries,
		LastQuery: h.getLastQuery(),
	})
}

func (h *RecommendHandler) setLastQuery(query string) {
	h.mu.Lock()
	h.lastQuery = query
	h.mu.Unlock()
}

func (h *RecommendHandler) getLastQuery() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastQuery
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, recommend.NewErrorResponse(code, message))
}
