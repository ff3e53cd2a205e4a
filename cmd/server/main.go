// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package main

import (
	"context"
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/config"
	"github.com/avolkhov/go-bookmark-keeper/internal/handler"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/server"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bookmark-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db)
	services := service.NewServices(storages, cfg.App, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
