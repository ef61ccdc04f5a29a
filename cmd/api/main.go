package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"place-recommender/internal/config"
	httphandler "place-recommender/internal/http"
	"place-recommender/internal/services/geo"
	"place-recommender/internal/services/llm"
	"place-recommender/internal/services/recommend"
)

func main() {
	var (
		port  = flag.String("port", "", "Port to run the server on (overrides PORT)")
		debug = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	llmClient, err := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create LLM client")
	}

	httpClient := &http.Client{Timeout: cfg.Google.Timeout}

	geocoder, err := geo.NewGeocoder(cfg.Google.APIKey,
		geo.WithGeocoderBaseURL(cfg.Google.GeocodeBaseURL),
		geo.WithGeocoderHTTPClient(httpClient),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create geocoder")
	}

	placesClient, err := geo.NewPlacesClient(cfg.Google.APIKey,
		geo.WithPlacesBaseURL(cfg.Google.PlacesBaseURL),
		geo.WithPlacesHTTPClient(httpClient),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create places client")
	}

	service := recommend.NewService(llmClient, geocoder, placesClient, cfg.Search.RadiusMeters)

	router := httphandler.NewRouter()
	handler := httphandler.NewRecommendHandler(service)
	router.RegisterRecommendRoutes(handler)
	router.RegisterUIRoutes()
	router.RegisterHealthRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}
