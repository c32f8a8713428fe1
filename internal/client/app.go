// SPDX-License-Identifier: Apache-2.0

// Package client composes the corostc commands: it connects a session
// from the configured credentials and, for the interactive browser, runs
// the TUI with the background cache sync.
package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/service"
	"github.com/dlenski/corostc/internal/tui"
	"github.com/dlenski/corostc/models"
)

// App is the interactive activity browser.
type App struct {
	cfg      *config.StructuredConfig
	services *service.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, services *service.Services, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{cfg: cfg, services: services, ui: ui, logger: logger}, nil
}

// Run connects a session, performs an initial cache refresh, starts the
// periodic background sync and hands control to the TUI. A logout from
// the TUI discards the persisted session and restarts the flow with a
// fresh interactive login.
func (a *App) Run(ctx context.Context) error {
	if _, err := Connect(ctx, a.services, a.cfg.Auth); err != nil {
		return err
	}

	if _, err := a.services.SyncService.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "sync warning: %v\n", err)
		a.logger.Warn().Err(err).Msg("initial cache refresh failed")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err := a.services.AuthService.Logout(ctx); err != nil {
			return err
		}
		// Drop the configured auth material so the rerun prompts
		// instead of silently reusing the same account.
		a.cfg.Auth = config.Auth{}
		return a.Run(ctx)
	}

	return nil
}

// Connect establishes a session from the configured auth material,
// falling back to an interactive prompt when neither a token, a
// persisted session nor full credentials are available.
func Connect(ctx context.Context, services *service.Services, auth config.Auth) (models.Session, error) {
	creds := CredentialsFromConfig(auth)

	session, err := services.AuthService.Connect(ctx, creds)
	if !errors.Is(err, service.ErrCredentialsRequired) {
		return session, err
	}

	creds, err = PromptCredentials(creds)
	if err != nil {
		return models.Session{}, err
	}
	return services.AuthService.Connect(ctx, creds)
}
