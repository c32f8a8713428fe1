// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/dlenski/corostc/internal/adapter"
	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/store"
)

// Services aggregates the corostc application services.
type Services struct {
	AuthService     AuthService
	ActivityService ActivityService
	SyncService     SyncService
	SyncJob         SyncJob
}

// NewServices wires the service layer on top of the local storages and
// the Coros adapter.
func NewServices(storages *store.Storages, coros adapter.CorosAdapter, apiCfg config.API, logger *logger.Logger) *Services {
	activitySvc := NewActivityService(storages, coros, apiCfg.WebBaseURL, logger)
	syncSvc := NewSyncService(storages, activitySvc, logger)

	return &Services{
		AuthService:     NewAuthService(storages, coros, logger),
		ActivityService: activitySvc,
		SyncService:     syncSvc,
		SyncJob:         NewSyncJob(syncSvc, logger),
	}
}
