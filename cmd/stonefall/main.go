// Package main is the entry point for stonefall.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/stonefall/internal/game"
	"github.com/samdwyer/stonefall/internal/logger"
	"github.com/samdwyer/stonefall/internal/telemetry"
)

func main() {
	// Load .env file for local development
	envErr := godotenv.Load()

	closer, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	log := logger.Log.WithField("session", telemetry.SessionID())

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Game still works without observability
			log.WithError(err).Warn("telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		log.WithError(err).Error("invalid configuration")
		os.Exit(1)
	}

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		log.WithError(err).Error("game init failed")
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("game error")
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars
// and reports whether an exporter destination is configured.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_STONEFALL_API_KEY")
	if apiKey == "" {
		// Plain OTEL_* configuration still works, e.g. a local collector
		return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	}

	dataset := os.Getenv("HONEYCOMB_STONEFALL_DATASET")
	if dataset == "" {
		dataset = "stonefall"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
