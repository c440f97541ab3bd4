package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Forbidden-Duck/ecommerce-backend/internal/app"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/config"
)

func main() {
	// Missing .env is fine; the config file and real env cover it
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("LOG_PRETTY") == "true" {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if err := app.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("app")
	}
}
