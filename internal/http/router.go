package http

import (
	"net/http"
	"time"

	"place-recommender/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	chi.Router
}

func NewRouter() *Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(middleware.RateLimit)
	r.Use(middleware.Logging)
	r.Use(middleware.Recovery)

	return &Router{r}
}

// RegisterRecommendRoutes registers recommendation routes
func (r *Router) RegisterRecommendRoutes(handler *RecommendHandler) {
	handler.RegisterRoutes(r)
}

// RegisterUIRoutes registers the single-page UI
func (r *Router) RegisterUIRoutes() {
	r.Get("/", ServeIndex)
	r.Get("/index.html", ServeIndex)
}

// RegisterHealthRoutes registers health check routes
func (r *Router) RegisterHealthRoutes() {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ready","timestamp":"` + time.Now().Format(time.RFC3339) + `"}`))
	})
}
