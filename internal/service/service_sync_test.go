// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/internal/mock"
	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/models"
)

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (SyncService, *mock.MockCorosAdapter, *mock.MockActivityRepository) {
	t.Helper()
	mockAdapter := mock.NewMockCorosAdapter(ctrl)
	mockActivities := mock.NewMockActivityRepository(ctrl)

	storages := &store.Storages{Activities: mockActivities}
	activitySvc := NewActivityService(storages, mockAdapter, "https://t.coros.com", logger.Nop())

	return NewSyncService(storages, activitySvc, logger.Nop()), mockAdapter, mockActivities
}

func TestSyncService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockActivities := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	listed := []models.Activity{
		{LabelID: "4500000000000002", Name: "Evening Ride", SportType: models.Bike},
		{LabelID: "4500000000000001", Name: "Morning Run", SportType: models.Run},
	}

	gomock.InOrder(
		mockAdapter.EXPECT().QueryActivities(ctx, 1, 100).
			Return(models.ActivityPage{Count: 2, Activities: listed}, nil),
		mockActivities.EXPECT().Upsert(ctx, gomock.Any(), gomock.Any()).Return(nil),
		mockActivities.EXPECT().PruneExcept(ctx, []string{"4500000000000002", "4500000000000001"}).Return(nil),
	)

	count, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSyncService_Refresh_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().QueryActivities(ctx, 1, 100).
		Return(models.ActivityPage{}, context.DeadlineExceeded)

	_, err := svc.Refresh(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh activity cache")
}

func TestSyncService_Cached_PassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockActivities := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	sport := models.Hike
	filter := store.ActivityFilter{
		SportType: &sport,
		Since:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Limit:     10,
	}
	cached := []models.Activity{{LabelID: "4500000000000003", SportType: models.Hike}}

	mockActivities.EXPECT().List(ctx, filter).Return(cached, nil)

	got, err := svc.Cached(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}
