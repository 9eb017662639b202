package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/partfoundry/quoting/pkg/application/services"
	"github.com/partfoundry/quoting/pkg/infrastructure/config"
	"github.com/partfoundry/quoting/pkg/interfaces/api"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func main() {
	rates, err := config.Load(os.Getenv("QUOTE_CONFIG"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load rate config")
	}

	quoter := services.NewQuoteService(rates)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	handler := api.NewQuoteHandler(quoter)
	handler.Register(e)

	addr := os.Getenv("QUOTE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger.Info().Str("addr", addr).Msg("quote API listening")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
