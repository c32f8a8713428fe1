// SPDX-License-Identifier: Apache-2.0

// Package tui implements the interactive corostc activity browser on top
// of bubbletea. It reads from the local activity cache, refreshes it in
// the background, and offers per-activity actions (download, rename,
// delete, copy web URL).
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services    *service.Services
	downloadDir string
}

// New creates the TUI front end. downloadDir is where the detail
// screen's download action writes activity files.
func New(services *service.Services, downloadDir string, _ *logger.Logger) (*TUI, error) {
	if downloadDir == "" {
		downloadDir = "."
	}
	return &TUI{services: services, downloadDir: downloadDir}, nil
}

// MainLoop runs the activity browser until the user quits or asks to
// log out.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newAppModel(ctx, t.services, t.downloadDir)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
