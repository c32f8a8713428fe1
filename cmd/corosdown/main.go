// SPDX-License-Identifier: Apache-2.0

// corosdown downloads activities from Coros Training Center.
//
// With no positional arguments it fetches the most recent activity; with
// label IDs it fetches exactly those. Activities are written to files
// named after their titles unless -N (number by ID) or -c (single
// activity to stdout) is given.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dlenski/corostc/internal/adapter"
	"github.com/dlenski/corostc/internal/client"
	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/service"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/internal/workers"
	"github.com/dlenski/corostc/models"
)

func main() {
	log := logger.NewClientLogger("corosdown")

	cfg, labelIDs, err := config.GetDownloadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fileType, err := models.ParseFileType(cfg.Download.Format)
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

	ctx := context.Background()
	if _, err = client.Connect(ctx, services, cfg.Auth); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Refresh the cache up front: the export endpoint needs each
	// activity's sport code, which the listing provides.
	if _, err = services.SyncService.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not refresh activity list: %v\n", err)
	}

	if len(labelIDs) == 0 {
		latest, err := services.ActivityService.Latest(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		labelIDs = []string{latest.LabelID}
	}

	if cfg.Download.Stdout {
		if len(labelIDs) != 1 {
			fmt.Fprintln(os.Stderr, "-c/--stdout requires exactly one activity")
			os.Exit(2)
		}
		data, err := services.ActivityService.Download(ctx, labelIDs[0], fileType)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if _, err = os.Stdout.Write(data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	pool := workers.NewDownloadPool(cfg.Workers.DownloadConcurrency, log)
	errs := pool.Run(ctx, labelIDs, func(ctx context.Context, labelID string) error {
		data, err := services.ActivityService.Download(ctx, labelID, fileType)
		if err != nil {
			return err
		}
		name := services.ActivityService.ExportFilename(ctx, labelID, fileType, cfg.Download.Numbered)
		path := filepath.Join(cfg.Download.Directory, name)
		if err = os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Saved %s\n", path)
		return nil
	})

	failed := 0
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed++
		fmt.Fprintf(os.Stderr, "warning: activity %s failed: %v\n", labelIDs[i], err)
		if cached, getErr := storages.Activities.Get(ctx, labelIDs[i]); getErr == nil {
			fmt.Fprintf(os.Stderr, "  see %s\n", services.ActivityService.WebURL(cached.LabelID, cached.SportType))
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
