// SPDX-License-Identifier: Apache-2.0

// corostc is the interactive Coros Training Center activity browser.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dlenski/corostc/internal/adapter"
	"github.com/dlenski/corostc/internal/client"
	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/service"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("corostc")

	cfg, err := config.GetBrowserConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local cache")
	}

	coros, err := adapter.NewHTTPCorosAdapter(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create API client")
	}

	services := service.NewServices(storages, coros, cfg.API, log)

	ui, err := tui.New(services, cfg.Download.Directory, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ui")
	}

	app, err := client.NewApp(cfg, services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app")
	}

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
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
