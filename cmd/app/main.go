package main

import (
	"primecm/config"
	"primecm/di"
	"primecm/helper"
	"primecm/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Prime CM API
// @version 1.0
// @description Admins, customers and print bookings for the Prime CM studio.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
