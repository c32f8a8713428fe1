// SPDX-License-Identifier: Apache-2.0

// corosup uploads FIT files to Coros Training Center.
//
// The import endpoint does not report the ID of the created activity, so
// after each upload the tool relists activities and matches the new one
// by FIT session start time. The matched activity's web URL is printed
// so the result can be inspected in a browser.
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
)

func main() {
	log := logger.NewClientLogger("corosup")

	cfg, paths, err := config.GetUploadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: corosup [options] FILE.fit...")
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

	failed := 0
	for _, path := range paths {
		if err := uploadOne(ctx, services, path, cfg.Upload.Gzip); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, err)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func uploadOne(ctx context.Context, services *service.Services, path string, gzipCompress bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	activity, found, err := services.ActivityService.Upload(ctx, f, filepath.Base(path), gzipCompress)
	if err != nil {
		return err
	}

	if !found {
		fmt.Printf("Uploaded %s, but couldn't determine the new activity's ID\n", path)
		return nil
	}

	fmt.Printf("Uploaded %s as %q: %s\n",
		path, activity.Name,
		services.ActivityService.WebURL(activity.LabelID, activity.SportType))
	return nil
}
