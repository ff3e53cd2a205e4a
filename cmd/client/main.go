package main

import (
	"fmt"

	"github.com/avolkhov/go-bookmark-keeper/internal/adapter"
	"github.com/avolkhov/go-bookmark-keeper/internal/client"
	"github.com/avolkhov/go-bookmark-keeper/internal/config"
	"github.com/avolkhov/go-bookmark-keeper/internal/logger"
	"github.com/avolkhov/go-bookmark-keeper/internal/service"
	"github.com/avolkhov/go-bookmark-keeper/internal/store"
	"github.com/avolkhov/go-bookmark-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("bookmark-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)
	ui := tui.New(services, log)

	app := client.NewApp(services, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
