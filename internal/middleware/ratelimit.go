package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"place-recommender/internal/services/recommend"
)

// RateLimit applies a per-client token bucket to inbound requests. This
// protects the service itself; outbound API call budgeting is out of scope.
func RateLimit(next http.Handler) http.Handler {
	limiter := newTokenBucketLimiter(60, 10)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := getClientIP(r)

		if !limiter.Allow(clientIP) {
			log.Warn().
				Str("client_ip", clientIP).
				Str("url", r.URL.String()).
				Msg("Rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "60")
			w.WriteHeader(http.StatusTooManyRequests)

			resp := recommend.NewErrorResponse(recommend.ErrCodeRateLimit, "Rate limit exceeded. Please try again later.")
			if err := json.NewEncoder(w).Encode(resp); err != nil {
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getClientIP extracts the real client IP address
func getClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		if commaIndex := strings.IndexByte(forwardedFor, ','); commaIndex > 0 {
			return forwardedFor[:commaIndex]
		}
		return forwardedFor
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}

// tokenBucketLimiter is a basic in-memory rate limiter, per client IP.
type tokenBucketLimiter struct {
	requestsPerMinute int
	burstSize         int

	mu      sync.Mutex
	clients map[string]*clientBucket
}

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

func newTokenBucketLimiter(requestsPerMinute, burstSize int) *tokenBucketLimiter {
	return &tokenBucketLimiter{
		requestsPerMinute: requestsPerMinute,
		burstSize:         burstSize,
		clients:           make(map[string]*clientBucket),
	}
}

func (rl *tokenBucketLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	client, exists := rl.clients[clientIP]
	if !exists {
		client = &clientBucket{
			tokens:     rl.burstSize,
			lastRefill: now,
		}
		rl.clients[clientIP] = client
	}

	timePassed := now.Sub(client.lastRefill)
	tokensToAdd := int(timePassed.Minutes() * float64(rl.requestsPerMinute))
	if tokensToAdd > 0 {
		client.tokens = min(client.tokens+tokensToAdd, rl.burstSize)
		client.lastRefill = now
	}

	if client.tokens > 0 {
		client.tokens--
		return true
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
