package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	Google GoogleConfig
	Search SearchConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type GoogleConfig struct {
	APIKey         string
	GeocodeBaseURL string
	PlacesBaseURL  string
	Timeout        time.Duration
}

type SearchConfig struct {
	RadiusMeters int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
			Timeout: getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
		},
		Google: GoogleConfig{
			APIKey:         getEnv("GOOGLE_API_KEY", ""),
			GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", "https://maps.googleapis.com/maps/api/geocode"),
			PlacesBaseURL:  getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
			Timeout:        getEnvAsDuration("GOOGLE_TIMEOUT", 10*time.Second),
		},
		Search: SearchConfig{
			RadiusMeters: getEnvAsInt("SEARCH_RADIUS_METERS", 1500),
		},
	}

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.Google.APIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if cfg.Search.RadiusMeters <= 0 {
		return nil, fmt.Errorf("SEARCH_RADIUS_METERS must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
