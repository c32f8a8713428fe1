// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/models"
)

type syncService struct {
	storages   *store.Storages
	activities ActivityService
	logger     *logger.Logger
}

// NewSyncService constructs the [SyncService].
func NewSyncService(storages *store.Storages, activities ActivityService, logger *logger.Logger) SyncService {
	return &syncService{storages: storages, activities: activities, logger: logger}
}

// Refresh implements [SyncService]: full listing fetch, upsert into the
// cache, prune of rows the service no longer reports.
func (s *syncService) Refresh(ctx context.Context) (int, error) {
	activities, err := s.activities.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh activity cache: %w", err)
	}

	if err := s.storages.Activities.Upsert(ctx, activities...); err != nil {
		return 0, fmt.Errorf("cache activities: %w", err)
	}

	keep := make([]string, 0, len(activities))
	for _, a := range activities {
		keep = append(keep, a.LabelID)
	}
	if err := s.storages.Activities.PruneExcept(ctx, keep); err != nil {
		return 0, fmt.Errorf("prune activity cache: %w", err)
	}

	s.logger.Debug().Int("count", len(activities)).Msg("activity cache refreshed")
	return len(activities), nil
}

// Cached implements [SyncService].
func (s *syncService) Cached(ctx context.Context, filter store.ActivityFilter) ([]models.Activity, error) {
	items, err := s.storages.Activities.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list cached activities: %w", err)
	}
	return items, nil
}
