// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	saveSession = `
		INSERT INTO sessions (id, account, access_token, obtained_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			account      = excluded.account,
			access_token = excluded.access_token,
			obtained_at  = excluded.obtained_at;`

	getSession = `
		SELECT account, access_token, obtained_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions WHERE id = 1;`

	upsertActivity = `
		INSERT INTO activities (
			label_id,
			name,
			sport_type,
			date,
			start_time,
			end_time,
			start_timezone,
			end_timezone,
			distance,
			total_time,
			synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CURRENT_TIMESTAMP)
		ON CONFLICT (label_id) DO UPDATE SET
			name           = excluded.name,
			sport_type     = excluded.sport_type,
			date           = excluded.date,
			start_time     = excluded.start_time,
			end_time       = excluded.end_time,
			start_timezone = excluded.start_timezone,
			end_timezone   = excluded.end_timezone,
			distance       = excluded.distance,
			total_time     = excluded.total_time,
			synced_at      = CURRENT_TIMESTAMP;`

	getSingleActivity = `
		SELECT
			label_id,
			name,
			sport_type,
			date,
			start_time,
			end_time,
			start_timezone,
			end_timezone,
			distance,
			total_time
		FROM activities
		WHERE label_id = $1;`
)

var activityColumns = []string{
	"label_id",
	"name",
	"sport_type",
	"date",
	"start_time",
	"end_time",
	"start_timezone",
	"end_timezone",
	"distance",
	"total_time",
}

// buildListActivitiesQuery assembles the filtered listing query with
// squirrel. Results are ordered newest first.
func buildListActivitiesQuery(filter ActivityFilter) (string, []any, error) {
	q := sq.Select(activityColumns...).
		From("activities").
		OrderBy("start_time DESC")

	if filter.SportType != nil {
		q = q.Where(sq.Eq{"sport_type": int(*filter.SportType)})
	}
	if !filter.Since.IsZero() {
		q = q.Where(sq.GtOrEq{"start_time": filter.Since.Unix()})
	}
	if filter.NameContains != "" {
		q = q.Where(sq.Like{"lower(name)": "%" + strings.ToLower(filter.NameContains) + "%"})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	return q.ToSql()
}

// buildDeleteActivitiesQuery removes cached rows by label ID.
func buildDeleteActivitiesQuery(labelIDs []string) (string, []any, error) {
	return sq.Delete("activities").
		Where(sq.Eq{"label_id": labelIDs}).
		ToSql()
}

// buildPruneExceptQuery removes every cached row whose label ID is not in
// keep. With an empty keep list it clears the table.
func buildPruneExceptQuery(keep []string) (string, []any, error) {
	q := sq.Delete("activities")
	if len(keep) > 0 {
		q = q.Where(sq.NotEq{"label_id": keep})
	}
	return q.ToSql()
}
