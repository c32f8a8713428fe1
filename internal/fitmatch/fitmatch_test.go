// SPDX-License-Identifier: Apache-2.0

package fitmatch

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlenski/corostc/models"
)

func TestSessionStart_RejectsGarbage(t *testing.T) {
	_, err := SessionStart(bytes.NewReader([]byte("not a fit file")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode fit file")
}

func TestMatch_ExactStart(t *testing.T) {
	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	activities := []models.Activity{
		{LabelID: "4500000000000002", StartTime: start.Add(2 * time.Hour).Unix()},
		{LabelID: "4500000000000001", StartTime: start.Unix()},
	}

	got, ok := Match(activities, start, DefaultTolerance)
	require.True(t, ok)
	assert.Equal(t, "4500000000000001", got.LabelID)
}

func TestMatch_WithinTolerance(t *testing.T) {
	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	activities := []models.Activity{
		{LabelID: "4500000000000001", StartTime: start.Add(time.Second).Unix()},
	}

	_, ok := Match(activities, start, time.Second)
	assert.True(t, ok)
}

func TestMatch_OutsideTolerance(t *testing.T) {
	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	activities := []models.Activity{
		{LabelID: "4500000000000001", StartTime: start.Add(5 * time.Second).Unix()},
	}

	_, ok := Match(activities, start, time.Second)
	assert.False(t, ok)
}

func TestMatch_TimezoneDoesNotAffectInstant(t *testing.T) {
	// The listing reports start times as unix seconds plus a zone
	// offset; the offset changes the rendering, not the instant.
	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	activities := []models.Activity{
		{LabelID: "4500000000000001", StartTime: start.Unix(), StartTimezone: -32},
	}

	_, ok := Match(activities, start, DefaultTolerance)
	assert.True(t, ok)
}

func TestMatch_NewestFirstWins(t *testing.T) {
	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	activities := []models.Activity{
		{LabelID: "newest", StartTime: start.Unix()},
		{LabelID: "older", StartTime: start.Unix()},
	}

	got, ok := Match(activities, start, DefaultTolerance)
	require.True(t, ok)
	assert.Equal(t, "newest", got.LabelID)
}

func TestMatch_Empty(t *testing.T) {
	_, ok := Match(nil, time.Now(), DefaultTolerance)
	assert.False(t, ok)
}

func TestMatch_ZeroToleranceUsesDefault(t *testing.T) {
	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	activities := []models.Activity{
		{LabelID: "4500000000000001", StartTime: start.Add(time.Second).Unix()},
	}

	_, ok := Match(activities, start, 0)
	assert.True(t, ok)
}
