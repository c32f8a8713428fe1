// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlenski/corostc/models"
)

func Test_buildListActivitiesQuery_NoFilter(t *testing.T) {
	query, args, err := buildListActivitiesQuery(ActivityFilter{})
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from activities")
	require.Contains(t, q, "order by start_time desc")
	require.NotContains(t, q, "where")
	require.NotContains(t, q, "limit")

	for _, col := range activityColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildListActivitiesQuery_AllFilters(t *testing.T) {
	sport := models.Hike
	since := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListActivitiesQuery(ActivityFilter{
		SportType:    &sport,
		Since:        since,
		NameContains: "Trail",
		Limit:        25,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "sport_type = ?")
	require.Contains(t, q, "start_time >= ?")
	require.Contains(t, q, "lower(name) like ?")
	require.Contains(t, q, "limit 25")

	require.Len(t, args, 3)
	assert.Equal(t, int(models.Hike), args[0])
	assert.Equal(t, since.Unix(), args[1])
	assert.Equal(t, "%trail%", args[2])
}

func Test_buildListActivitiesQuery_NameFilterIsCaseInsensitive(t *testing.T) {
	_, args, err := buildListActivitiesQuery(ActivityFilter{NameContains: "MORNING"})
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, "%morning%", args[0])
}

func Test_buildDeleteActivitiesQuery(t *testing.T) {
	query, args, err := buildDeleteActivitiesQuery([]string{"a", "b"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from activities")
	require.Contains(t, q, "label_id in (?,?)")
	assert.Equal(t, []any{"a", "b"}, args)
}

func Test_buildPruneExceptQuery(t *testing.T) {
	query, args, err := buildPruneExceptQuery([]string{"a", "b", "c"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from activities")
	require.Contains(t, q, "label_id not in (?,?,?)")
	assert.Equal(t, []any{"a", "b", "c"}, args)
}

func Test_buildPruneExceptQuery_EmptyKeepDeletesEverything(t *testing.T) {
	query, args, err := buildPruneExceptQuery(nil)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from activities")
	require.NotContains(t, q, "where")
}
