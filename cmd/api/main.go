// Package main implements the HTTP server reporting database health.
package main

import (
	"fmt"
	"log"
	"net/http"

	apihttp "github.com/dsjohal14/dbhealth/internal/http"
	"github.com/dsjohal14/dbhealth/internal/libs/config"
	"github.com/dsjohal14/dbhealth/internal/libs/obs"
	"github.com/dsjohal14/dbhealth/internal/scope/db"
)

func main() {
	// Load config; an unreadable password file stops us before the listener binds
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	obs.InitLogger(cfg.LogLevel)
	logger := obs.Logger("api")

	accessor := db.Open(cfg)
	defer accessor.Close()

	logger.Info().
		Str("container", cfg.ContainerName).
		Str("db_host", cfg.DBHost).
		Str("db_name", cfg.DBName).
		Bool("pooled", cfg.DBPool).
		Msg("database accessor ready")

	handler := apihttp.NewHandler(accessor, cfg.ContainerName, logger)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	logger.Info().Str("addr", addr).Msg("starting API server")

	if err := http.ListenAndServe(addr, handler.Routes()); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
