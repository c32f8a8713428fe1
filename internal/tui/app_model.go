// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dlenski/corostc/internal/service"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenRename
)

type appModel struct {
	ctx         context.Context
	services    *service.Services
	downloadDir string

	currentScreen screen
	list          listModel
	detail        detailModel
	rename        renameModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	pendingDelete string
	logout        bool
	err           error
}

func newAppModel(ctx context.Context, services *service.Services, downloadDir string) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		downloadDir:   downloadDir,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadList()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.activities = msg.activities
		if m.list.filter() == nil {
			m.list.rebuildSportOptions(msg.activities)
		}
		if m.list.idx >= len(m.list.activities) {
			m.list.idx = len(m.list.activities) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		m.list.syncing = false
		if msg.err != nil {
			m.showErrorf("Sync failed: " + msg.err.Error())
			return m, m.cmdLoadList()
		}
		m.list.status = fmt.Sprintf("Synced %d activities", msg.count)
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case downloadDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.setStatus("Saved " + msg.path)
		return m, cmdClearStatus()
	case deletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList()
	case renamedMsg:
		m.rename.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.activity.Name = strings.TrimSpace(m.rename.input.Value())
		m.currentScreen = screenDetail
		return m, m.cmdLoadList()
	case copiedMsg:
		m.setStatus("Copied!")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenRename:
		return m.updateRename(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenRename:
		body = m.rename.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setStatus(status string) {
	if m.currentScreen == screenDetail {
		m.detail.status = status
	}
	m.list.status = status
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.activities)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			activity, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{activity: activity}
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.sync):
			if m.list.syncing {
				return m, nil
			}
			m.list.syncing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSync())
		case key.Matches(msg, keys.filter):
			m.list.filterIdx++
			if m.list.filterIdx >= len(m.list.sportOptions) {
				m.list.filterIdx = -1
			}
			m.list.loading = true
			m.list.idx = 0
			return m, m.cmdLoadList()
		case key.Matches(msg, keys.export):
			activity, ok := m.list.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDownload(activity)
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdDownload(m.detail.activity)
	case key.Matches(keyMsg, keys.rename):
		m.rename = newRenameModel(m.detail.activity.LabelID, m.detail.activity.Name)
		m.currentScreen = screenRename
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.activity.Name
		m.pendingDelete = m.detail.activity.LabelID
		return m, nil
	case key.Matches(keyMsg, keys.copyURL):
		url := m.services.ActivityService.WebURL(m.detail.activity.LabelID, m.detail.activity.SportType)
		return m, cmdCopyToClipboard(url)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.rename.input.Value())
			if name == "" {
				m.showErrorf("Title must not be empty")
				return m, nil
			}
			m.rename.submitting = true
			return m, m.cmdRename(m.rename.labelID, name)
		}
	}

	var cmd tea.Cmd
	m.rename.input, cmd = m.rename.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	filter := store.ActivityFilter{SportType: m.list.filter()}
	return func() tea.Msg {
		activities, err := svc.Cached(ctx, filter)
		return listLoadedMsg{activities: activities, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	return func() tea.Msg {
		count, err := svc.Refresh(ctx)
		return syncDoneMsg{count: count, err: err}
	}
}

func (m appModel) cmdDownload(activity models.Activity) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ActivityService
	dir := m.downloadDir
	return func() tea.Msg {
		data, err := svc.Download(ctx, activity.LabelID, models.FIT)
		if err != nil {
			return downloadDoneMsg{err: err}
		}
		path := filepath.Join(dir, svc.ExportFilename(ctx, activity.LabelID, models.FIT, false))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return downloadDoneMsg{err: fmt.Errorf("write activity file: %w", err)}
		}
		return downloadDoneMsg{path: path}
	}
}

func (m appModel) cmdDelete(labelID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ActivityService
	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, labelID)}
	}
}

func (m appModel) cmdRename(labelID, name string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ActivityService
	return func() tea.Msg {
		return renamedMsg{err: svc.Rename(ctx, labelID, name)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return downloadDoneMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
