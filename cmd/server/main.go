package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/camthoi/blog/internal/config"
	"github.com/camthoi/blog/internal/export"
	"github.com/camthoi/blog/internal/handler"
	"github.com/camthoi/blog/internal/router"
	"github.com/camthoi/blog/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set; admin login is disabled")
	}

	api, err := handler.NewAPI(st, cfg, export.New(st))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build handlers")
	}

	r := router.Setup(api, cfg.SessionSecret)

	log.Info().Str("addr", cfg.ListenAddr).Msg("Starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("Failed to run server")
	}
}
